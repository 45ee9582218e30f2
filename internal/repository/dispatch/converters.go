package dispatch

import (
	"dispatch/internal/entities"
	driverrepo "dispatch/internal/repository/driver"
)

func ToLoadDomain(l *LoadDB) *entities.Load {
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

func ToDriverDomain(d *AssignableDriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	phone := ""
	if d.Phone != nil {
		phone = *d.Phone
	}
	email := ""
	if d.Email != nil {
		email = *d.Email
	}

	return &entities.Driver{
		ID:          d.ID,
		DisplayName: driverrepo.ResolveDisplayName(d.FullName, d.FirstName, d.LastName, d.ID),
		Phone:       phone,
		Email:       email,
		Status:      entities.DriverStatusType(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func ToDriverDomainList(driversDB []AssignableDriverDB) []entities.Driver {
	if len(driversDB) == 0 {
		return []entities.Driver{}
	}

	result := make([]entities.Driver, len(driversDB))
	for i, driverDB := range driversDB {
		result[i] = *ToDriverDomain(&driverDB)
	}
	return result
}
