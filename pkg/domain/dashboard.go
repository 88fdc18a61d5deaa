package domain

import "github.com/google/uuid"

// Dashboard is the owner's aggregated snapshot from GET /dashboard/owner/{id}.
type Dashboard struct {
	TotalProperties     int              `json:"total_properties"`
	RentedProperties    int              `json:"rented_properties"`
	AvailableProperties int              `json:"available_properties"`
	MonthlyRevenue      float64          `json:"monthly_revenue"`
	PendingPayments     int              `json:"pending_payments"`
	OverduePayments     int              `json:"overdue_payments"`
	RecentPayments      []RecentPayment  `json:"recent_payments"`
	MonthlyRevenues     []MonthlyRevenue `json:"monthly_revenues"`
}

// RecentPayment is one row of the dashboard's latest-payments list.
type RecentPayment struct {
	ID       uuid.UUID `json:"id"`
	Tenant   string    `json:"tenant"`
	Property string    `json:"property"`
	Amount   float64   `json:"amount"`
	Date     string    `json:"date"`
}

// MonthlyRevenue is one bar of the dashboard revenue history.
type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}
