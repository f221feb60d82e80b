// Package handlers holds the gin handlers for every dashboard screen. Each
// handler translates HTTP to a service call and maps typed service errors to
// status codes.
package handlers

import adminRepo "bizly/database/repository/admin"

// HandlerBundle groups every handler so routes get one argument. AdminRepo
// rides along because the auth middleware needs it for token fallback checks.
type HandlerBundle struct {
	AdminRepo adminRepo.AdminRepository

	Auth      *AuthHandler
	Customer  *CustomerHandler
	Catalog   *CatalogHandler
	Order     *OrderHandler
	Staff     *StaffHandler
	Booking   *BookingHandler
	Campaign  *CampaignHandler
	Dashboard *DashboardHandler
}
