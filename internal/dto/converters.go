package dto

import (
	"dispatch/internal/entities"
)

func FromLoad(l *entities.Load) Load {
	return Load{
		ID:              l.ID,
		Shipper:         l.Shipper,
		Origin:          l.Origin,
		Destination:     l.Destination,
		Dispatcher:      l.Dispatcher,
		Rate:            l.Rate,
		Status:          l.Status.String(),
		DriverID:        l.DriverID,
		ProblemFlag:     l.ProblemFlag,
		Issue:           l.Issue.String(),
		CreatedAt:       l.CreatedAt,
		StatusChangedAt: l.StatusChangedAt,
		DeliveredAt:     l.DeliveredAt,
	}
}

func FromLoadList(loads []entities.Load) []Load {
	result := make([]Load, len(loads))
	for i := range loads {
		result[i] = FromLoad(&loads[i])
	}
	return result
}

func FromDriver(d *entities.Driver) Driver {
	return Driver{
		ID:     d.ID,
		Name:   d.DisplayName,
		Phone:  d.Phone,
		Email:  d.Email,
		Status: d.Status.String(),
	}
}

func FromDriverList(drivers []entities.Driver) []Driver {
	result := make([]Driver, len(drivers))
	for i := range drivers {
		result[i] = FromDriver(&drivers[i])
	}
	return result
}

func FromTruck(t *entities.Truck) Truck {
	return Truck{
		ID:         t.ID,
		UnitNumber: t.UnitNumber,
		Make:       t.Make,
		Model:      t.Model,
		Year:       t.Year,
		Status:     t.Status.String(),
	}
}

func FromTruckList(trucks []entities.Truck) []Truck {
	result := make([]Truck, len(trucks))
	for i := range trucks {
		result[i] = FromTruck(&trucks[i])
	}
	return result
}
