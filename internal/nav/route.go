// Package nav models the client navigation graph: a closed set of routes
// and a command stream a UI shell can consume to drive transitions.
package nav

// Route identifies a destination in the navigation graph. The interface is
// sealed; only the route types declared in this package implement it.
type Route interface {
	Path() string
	isRoute()
}

// LoginRoute is the unauthenticated entry screen.
type LoginRoute struct{}

func (LoginRoute) Path() string { return "/login" }
func (LoginRoute) isRoute()     {}

// RegisterRoute is the account creation screen.
type RegisterRoute struct{}

func (RegisterRoute) Path() string { return "/register" }
func (RegisterRoute) isRoute()     {}

// RecoveryRoute is the password recovery screen.
type RecoveryRoute struct{}

func (RecoveryRoute) Path() string { return "/recovery" }
func (RecoveryRoute) isRoute()     {}

// HomeRoute is the authenticated landing screen.
type HomeRoute struct{}

func (HomeRoute) Path() string { return "/home" }
func (HomeRoute) isRoute()     {}

// OrdersRoute lists the user's orders.
type OrdersRoute struct{}

func (OrdersRoute) Path() string { return "/orders" }
func (OrdersRoute) isRoute()     {}

// OrderDetailRoute shows a single order identified by its number.
type OrderDetailRoute struct {
	Number string
}

func (r OrderDetailRoute) Path() string { return "/orders/" + r.Number }
func (OrderDetailRoute) isRoute()       {}

// ProfileRoute shows the account profile.
type ProfileRoute struct{}

func (ProfileRoute) Path() string { return "/profile" }
func (ProfileRoute) isRoute()     {}
