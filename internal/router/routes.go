package router

// Route resolves a page identifier to its content source. Exactly one of
// Fragment or External is set: Fragment names the HTML document whose main
// region is spliced into the app, External is a full-navigation destination
// that leaves the single-page flow entirely.
type Route struct {
	Fragment string
	External string
}

// DefaultRoutes is the static route table of the CashLens front end.
// The spending analyzer owns independent third-party scripts, so it is the
// sole external-redirect route.
func DefaultRoutes() map[string]Route {
	return map[string]Route{
		"home":              {Fragment: "pages/home.html"},
		"banks":             {Fragment: "pages/banks.html"},
		"groceries":         {Fragment: "pages/groceries.html"},
		"school":            {Fragment: "pages/school.html"},
		"utilities":         {Fragment: "pages/utilities.html"},
		"work":              {Fragment: "pages/work.html"},
		"spending-analyzer": {External: "spending-analyzer.html"},
	}
}
