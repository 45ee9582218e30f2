package load

import (
	"dispatch/internal/entities"
)

func ToDomain(l *LoadDB) *entities.Load {
	if l == nil {
		return nil
	}

	issue := entities.IssueType("")
	if l.Issue != nil {
		issue = entities.IssueType(*l.Issue)
	}

	return &entities.Load{
		ID:              l.ID,
		Shipper:         l.Shipper,
		Origin:          l.Origin,
		Destination:     l.Destination,
		Dispatcher:      l.Dispatcher,
		Rate:            l.Rate,
		Status:          entities.LoadStatusType(l.Status),
		DriverID:        l.DriverID,
		ProblemFlag:     l.ProblemFlag,
		Issue:           issue,
		CreatedAt:       l.CreatedAt,
		StatusChangedAt: l.StatusChangedAt,
		DeliveredAt:     l.DeliveredAt,
	}
}

func FromDomainModify(loadModify *entities.LoadModify) *LoadModifyDB {
	if loadModify == nil {
		return nil
	}
	loadDB := &LoadModifyDB{}

	if loadModify.ID != nil {
		loadDB.ID = loadModify.ID
	}
	if loadModify.Shipper != nil {
		loadDB.Shipper = loadModify.Shipper
	}
	if loadModify.Origin != nil {
		loadDB.Origin = loadModify.Origin
	}
	if loadModify.Destination != nil {
		loadDB.Destination = loadModify.Destination
	}
	if loadModify.Dispatcher != nil {
		loadDB.Dispatcher = loadModify.Dispatcher
	}
	if loadModify.Rate != nil {
		loadDB.Rate = loadModify.Rate
	}
	if loadModify.Status != nil {
		status := loadModify.Status.String()
		loadDB.Status = &status
	}
	if loadModify.ProblemFlag != nil {
		loadDB.ProblemFlag = loadModify.ProblemFlag
	}
	if loadModify.Issue != nil {
		issue := loadModify.Issue.String()
		loadDB.Issue = &issue
	}

	return loadDB
}

func ToDomainList(loadsDB []LoadDB) []entities.Load {
	if len(loadsDB) == 0 {
		return []entities.Load{}
	}

	result := make([]entities.Load, len(loadsDB))
	for i, loadDB := range loadsDB {
		result[i] = *ToDomain(&loadDB)
	}
	return result
}
