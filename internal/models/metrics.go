package models

type DailyCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type DashboardMetrics struct {
	TotalProperties      int            `json:"total_properties"`
	ActiveProperties     int            `json:"active_properties"`
	PropertiesByType     map[string]int `json:"properties_by_type"`
	ReservationsByStatus map[string]int `json:"reservations_by_status"`
	PendingComplaints    int            `json:"pending_complaints"`
	TotalUsers           int            `json:"total_users"`
	NewListingsByDay     []DailyCount   `json:"new_listings_by_day"`
}
