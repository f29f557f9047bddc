package constants

// Navigable console routes
const (
	// RouteEntry is the public login page.
	RouteEntry = "/"
	// RouteTransactions is the default authenticated route.
	RouteTransactions = "/transactions"
	// RouteAdmin is the treasurer-only user administration page.
	RouteAdmin = "/admin"
)
