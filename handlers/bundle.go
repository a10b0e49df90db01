// File: handlers/bundle.go
package handlers

import (
	"ecoskip/middleware"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Users backs the admin role check.
	Users middleware.UserLookup

	UserHandler    *UserHandler
	BookingHandler *BookingHandler
	SessionHandler *SessionHandler
	CatalogHandler *CatalogHandler
	ContactHandler *ContactHandler
	AdminHandler   *AdminHandler

	Metrics *middleware.Metrics
}
