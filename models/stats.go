package models

// OrderStatusStat is one bucket of the orders-by-status aggregation.
type OrderStatusStat struct {
	Status       string `bson:"_id" json:"status"`
	Count        int    `bson:"count" json:"count"`
	RevenueCents int64  `bson:"revenue_cents" json:"revenue_cents"`
}

// DashboardStats backs the overview screen.
type DashboardStats struct {
	Orders        []OrderStatusStat `json:"orders"`
	BookingsToday int               `json:"bookings_today"`
	Customers     int               `json:"customers"`
	Products      int               `json:"products"`
}
