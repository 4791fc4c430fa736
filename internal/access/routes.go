package access

// Page names of the route surface.
const (
	PageDashboard   = "dashboard"
	PageContacts    = "contacts"
	PageContactNew  = "contact_new"
	PageReports     = "reports"
	PageActivity    = "activity"
	PageUsers       = "users"
	PagePermissions = "permissions"
	PageSettings    = "settings"
	PageProfile     = "profile"
)

// Route is a named page and the requirement guarding it.
type Route struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Requirement
}

var routes = []Route{
	{Name: PageDashboard, Path: "/"},
	{Name: PageContacts, Path: "/contacts"},
	{Name: PageContactNew, Path: "/contacts/new", Requirement: Requirement{Permission: ActionCreateContact}},
	{Name: PageReports, Path: "/reports", Requirement: Requirement{Permission: ActionViewReports}},
	{Name: PageActivity, Path: "/activity", Requirement: Requirement{Permission: ActionViewActivityLogs}},
	{Name: PageUsers, Path: "/users", Requirement: Requirement{Role: RoleAdmin, Permission: ActionManageUsers}},
	{Name: PagePermissions, Path: "/permissions", Requirement: Requirement{Role: RoleAdmin, Permission: ActionManagePermissions}},
	{Name: PageSettings, Path: "/settings"},
	{Name: PageProfile, Path: "/profile"},
}

// Routes returns the route surface in menu order.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// LookupRoute finds a page by name.
func LookupRoute(name string) (Route, bool) {
	for _, r := range routes {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}

// RequirementFor returns the requirement of a known page. It panics on an
// unknown name, which is a wiring mistake.
func RequirementFor(name string) Requirement {
	r, ok := LookupRoute(name)
	if !ok {
		panic("access: unknown page " + name)
	}
	return r.Requirement
}

// Navigate runs the guard for a named page. Unmatched names redirect to
// the not-found page.
func Navigate(name string, authenticated bool, identity *Identity, table Table) Decision {
	r, ok := LookupRoute(name)
	if !ok {
		return Decision{State: StateNotFound, Redirect: NotFoundPath}
	}
	return Guard(authenticated, identity, table, r.Requirement)
}

// VisibleRoutes returns the pages identity may navigate to.
func VisibleRoutes(identity *Identity, table Table) []Route {
	visible := make([]Route, 0, len(routes))
	for _, r := range routes {
		if Guard(identity != nil, identity, table, r.Requirement).Allowed() {
			visible = append(visible, r)
		}
	}
	return visible
}
