package dto

import "github.com/google/uuid"

// DashboardStatsResponse is the aggregate header of the admin dashboard.
// Trends compare the current calendar month with the previous one.
type DashboardStatsResponse struct {
	TotalCompanies     int64   `json:"total_companies"`
	PendingCompanies   int64   `json:"pending_companies"`
	TotalShops         int64   `json:"total_shops"`
	ActiveShops        int64   `json:"active_shops"`
	VerificationsMonth int64   `json:"verifications_month"`
	VerificationsTrend float64 `json:"verifications_trend"`
	SuccessRate        float64 `json:"success_rate"`
	OpenErrors         int64   `json:"open_errors"`
}

type TopCompanyResponse struct {
	CompanyId         uuid.UUID `json:"company_id"`
	CompanyName       string    `json:"company_name"`
	VerificationCount int64     `json:"verification_count"`
	SuccessRate       float64   `json:"success_rate"`
}

type DailyCountResponse struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
