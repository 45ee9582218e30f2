// Package dto содержит типы запросов и ответов REST API.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type Load struct {
	ID              int64      `json:"id"`
	Shipper         string     `json:"shipper"`
	Origin          string     `json:"origin"`
	Destination     string     `json:"destination"`
	Dispatcher      string     `json:"dispatcher"`
	Rate            float64    `json:"rate"`
	Status          string     `json:"status"`
	DriverID        *int64     `json:"driver_id,omitempty"`
	ProblemFlag     bool       `json:"problem_flag"`
	Issue           string     `json:"issue,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	StatusChangedAt time.Time  `json:"status_changed_at"`
	DeliveredAt     *time.Time `json:"delivered_at,omitempty"`
}

type LoadCreate struct {
	Shipper     string  `json:"shipper"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Dispatcher  string  `json:"dispatcher"`
	Rate        float64 `json:"rate"`
	Status      string  `json:"status,omitempty"`
	Issue       string  `json:"issue,omitempty"`
}

type LoadUpdate struct {
	Shipper     *string  `json:"shipper,omitempty"`
	Origin      *string  `json:"origin,omitempty"`
	Destination *string  `json:"destination,omitempty"`
	Dispatcher  *string  `json:"dispatcher,omitempty"`
	Rate        *float64 `json:"rate,omitempty"`
	Status      *string  `json:"status,omitempty"`
	ProblemFlag *bool    `json:"problem_flag,omitempty"`
	Issue       *string  `json:"issue,omitempty"`
}

type LoadStatusUpdate struct {
	Status string `json:"status"`
}

type ProblemLoad struct {
	Load
	RespondBy time.Time `json:"respond_by"`
}

type Driver struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone,omitempty"`
	Email  string `json:"email,omitempty"`
	Status string `json:"status"`
}

type DriverCreate struct {
	FullName  string `json:"full_name,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Status    string `json:"status,omitempty"`
}

type DriverCreateResponse struct {
	ID int64 `json:"id"`
}

type DriverUpdate struct {
	FullName  *string `json:"full_name,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Status    *string `json:"status,omitempty"`
}

type Truck struct {
	ID         int64  `json:"id"`
	UnitNumber string `json:"unit_number"`
	Make       string `json:"make,omitempty"`
	Model      string `json:"model,omitempty"`
	Year       int    `json:"year,omitempty"`
	Status     string `json:"status"`
}

type TruckCreate struct {
	UnitNumber string `json:"unit_number"`
	Make       string `json:"make,omitempty"`
	Model      string `json:"model,omitempty"`
	Year       int    `json:"year,omitempty"`
	Status     string `json:"status,omitempty"`
}

type TruckCreateResponse struct {
	ID int64 `json:"id"`
}

type AssignRequest struct {
	LoadID   int64 `json:"load_id"`
	DriverID int64 `json:"driver_id"`
}

type AssignResponse struct {
	LoadID       int64     `json:"load_id"`
	DriverID     int64     `json:"driver_id"`
	DriverName   string    `json:"driver_name"`
	DriverStatus string    `json:"driver_status"`
	AssignedAt   time.Time `json:"assigned_at"`
}

type UnassignRequest struct {
	LoadID int64 `json:"load_id"`
}

// UnassignResponse с Released=false означает, что у груза не было водителя
// и ничего не записывалось.
type UnassignResponse struct {
	LoadID       int64  `json:"load_id"`
	DriverID     int64  `json:"driver_id,omitempty"`
	DriverStatus string `json:"driver_status,omitempty"`
	Released     bool   `json:"released"`
}

type DaySummary struct {
	Day       string  `json:"day"`
	LoadCount int     `json:"load_count"`
	Revenue   float64 `json:"revenue"`
}

type Dashboard struct {
	TotalRevenue        float64            `json:"total_revenue"`
	CountByStatus       map[string]int     `json:"count_by_status"`
	RevenueByDispatcher map[string]float64 `json:"revenue_by_dispatcher"`
	DriversByStatus     map[string]int     `json:"drivers_by_status"`
	WeeklySeries        []DaySummary       `json:"weekly_series"`
}
