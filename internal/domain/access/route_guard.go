// Package access decides which client route an authenticated principal may open.
// The decision is advisory: server endpoints enforce roles and approvals on their own.
package access

import (
	"strings"

	"marketplace/internal/domain/entity"
)

// Client routes.
const (
	RouteHome              = "/"
	RouteLogin             = "/login"
	RouteSellerDashboard   = "/seller-dashboard"
	RouteSellerRegister    = "/register-seller"
	RouteAdminDashboard    = "/admin-dashboard"
	RouteDeliveryDashboard = "/delivery-dashboard"
	RouteDeliveryRegister  = "/delivery-register"
)

var publicRoutes = []string{
	"/",
	"/login",
	"/signup",
	"/about",
	"/faq",
	"/privacy-policy",
	"/terms",
	"/products",
	"/admin-login",
	"/delivery-login",
}

var publicPrefixes = []string{
	"/products/",
}

// Decision is the outcome of a guard check.
type Decision struct {
	Allowed  bool   `json:"allowed"`
	Redirect string `json:"redirect,omitempty"`
}

// LandingRoute returns the route a principal is sent to after login.
func LandingRoute(principal *entity.Principal) string {
	if principal == nil {
		return RouteLogin
	}

	switch principal.Role {
	case entity.RoleSeller:
		if principal.IsApproved() {
			return RouteSellerDashboard
		}

		return RouteSellerRegister
	case entity.RoleAdmin:
		return RouteAdminDashboard
	case entity.RoleDelivery:
		if principal.IsApproved() {
			return RouteDeliveryDashboard
		}

		return RouteDeliveryRegister
	default:
		return RouteHome
	}
}

// IsPublic reports whether path is reachable without authentication.
func IsPublic(path string) bool {
	path = normalize(path)
	for _, route := range publicRoutes {
		if path == route {
			return true
		}
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// Guard decides whether principal may open path. A nil principal is an
// unauthenticated visitor.
func Guard(principal *entity.Principal, path string) Decision {
	path = normalize(path)
	if IsPublic(path) {
		return Decision{Allowed: true}
	}
	if principal == nil {
		return Decision{Redirect: RouteLogin}
	}

	landing := LandingRoute(principal)
	area, gated := gatedArea(path)
	if !gated || area == landing {
		return Decision{Allowed: true}
	}
	// Customers may open the onboarding forms to apply.
	if principal.Role == entity.RoleCustomer && (area == RouteSellerRegister || area == RouteDeliveryRegister) {
		return Decision{Allowed: true}
	}

	return Decision{Redirect: landing}
}

// gatedArea maps a path to the landing route that owns it.
func gatedArea(path string) (string, bool) {
	areas := []string{
		RouteSellerDashboard,
		RouteSellerRegister,
		RouteAdminDashboard,
		RouteDeliveryDashboard,
		RouteDeliveryRegister,
	}
	for _, area := range areas {
		if path == area || strings.HasPrefix(path, area+"/") {
			return area, true
		}
	}

	return "", false
}

func normalize(path string) string {
	if path == "" {
		return RouteHome
	}
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = RouteHome
		}
	}

	return path
}
