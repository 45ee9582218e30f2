package driver

import (
	"fmt"
	"strings"

	"dispatch/internal/entities"
)

// ResolveDisplayName собирает каноническое имя водителя из разнородных
// колонок. Приоритет: full_name, затем first_name + last_name, затем
// заглушка "Driver <id>". Единственное место, где живёт это правило.
func ResolveDisplayName(fullName, firstName, lastName *string, id int64) string {
	if fullName != nil && strings.TrimSpace(*fullName) != "" {
		return strings.TrimSpace(*fullName)
	}

	var parts []string
	if firstName != nil && strings.TrimSpace(*firstName) != "" {
		parts = append(parts, strings.TrimSpace(*firstName))
	}
	if lastName != nil && strings.TrimSpace(*lastName) != "" {
		parts = append(parts, strings.TrimSpace(*lastName))
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}

	return fmt.Sprintf("Driver %d", id)
}

func ToDomain(d *DriverDB) *entities.Driver {
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
		DisplayName: ResolveDisplayName(d.FullName, d.FirstName, d.LastName, d.ID),
		Phone:       phone,
		Email:       email,
		Status:      entities.DriverStatusType(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func FromDomainModify(driverModify *entities.DriverModify) *DriverModifyDB {
	if driverModify == nil {
		return nil
	}
	driverDB := &DriverModifyDB{}

	if driverModify.ID != nil {
		driverDB.ID = driverModify.ID
	}
	if driverModify.FullName != nil {
		driverDB.FullName = driverModify.FullName
	}
	if driverModify.FirstName != nil {
		driverDB.FirstName = driverModify.FirstName
	}
	if driverModify.LastName != nil {
		driverDB.LastName = driverModify.LastName
	}
	if driverModify.Phone != nil {
		driverDB.Phone = driverModify.Phone
	}
	if driverModify.Email != nil {
		driverDB.Email = driverModify.Email
	}
	if driverModify.Status != nil {
		status := driverModify.Status.String()
		driverDB.Status = &status
	}

	return driverDB
}

func ToDomainList(driversDB []DriverDB) []entities.Driver {
	if len(driversDB) == 0 {
		return []entities.Driver{}
	}

	result := make([]entities.Driver, len(driversDB))
	for i, driverDB := range driversDB {
		result[i] = *ToDomain(&driverDB)
	}
	return result
}
