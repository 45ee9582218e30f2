package truck

import (
	"dispatch/internal/entities"
)

func ToDomain(t *TruckDB) *entities.Truck {
	if t == nil {
		return nil
	}

	truckEntity := &entities.Truck{
		ID:         t.ID,
		UnitNumber: t.UnitNumber,
		Status:     entities.TruckStatusType(t.Status),
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}

	if t.Make != nil {
		truckEntity.Make = *t.Make
	}
	if t.Model != nil {
		truckEntity.Model = *t.Model
	}
	if t.Year != nil {
		truckEntity.Year = *t.Year
	}

	return truckEntity
}

func FromDomainModify(truckModify *entities.TruckModify) *TruckModifyDB {
	if truckModify == nil {
		return nil
	}
	truckDB := &TruckModifyDB{}

	if truckModify.ID != nil {
		truckDB.ID = truckModify.ID
	}
	if truckModify.UnitNumber != nil {
		truckDB.UnitNumber = truckModify.UnitNumber
	}
	if truckModify.Make != nil {
		truckDB.Make = truckModify.Make
	}
	if truckModify.Model != nil {
		truckDB.Model = truckModify.Model
	}
	if truckModify.Year != nil {
		truckDB.Year = truckModify.Year
	}
	if truckModify.Status != nil {
		status := truckModify.Status.String()
		truckDB.Status = &status
	}

	return truckDB
}

func ToDomainList(trucksDB []TruckDB) []entities.Truck {
	if len(trucksDB) == 0 {
		return []entities.Truck{}
	}

	result := make([]entities.Truck, len(trucksDB))
	for i, truckDB := range trucksDB {
		result[i] = *ToDomain(&truckDB)
	}
	return result
}
