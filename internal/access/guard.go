package access

// Redirect targets used by guard decisions.
const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
	NotFoundPath     = "/not-found"
)

// GuardState is the outcome of evaluating a navigation attempt.
type GuardState string

const (
	StateUnauthenticated      GuardState = "unauthenticated"
	StateAuthenticatedAllowed GuardState = "allowed"
	StateAuthenticatedDenied  GuardState = "denied"
	StateNotFound             GuardState = "not_found"
)

// Requirement annotates a guarded page. Empty fields impose nothing.
type Requirement struct {
	Role       Role   `json:"required_role,omitempty"`
	Permission string `json:"required_permission,omitempty"`
}

// Decision is a guard result; Redirect is empty when access is allowed.
type Decision struct {
	State    GuardState `json:"state"`
	Redirect string     `json:"redirect,omitempty"`
}

// Allowed reports whether the guarded content may be rendered.
func (d Decision) Allowed() bool {
	return d.State == StateAuthenticatedAllowed
}

// Guard evaluates a navigation attempt. The checks run in a fixed order
// and the first match wins: authentication, then role, then permission.
func Guard(authenticated bool, identity *Identity, table Table, req Requirement) Decision {
	if !authenticated || identity == nil {
		return Decision{State: StateUnauthenticated, Redirect: LoginPath}
	}
	if req.Role != "" && identity.Role != req.Role {
		return Decision{State: StateAuthenticatedDenied, Redirect: UnauthorizedPath}
	}
	if req.Permission != "" && !NewEvaluator(identity, table).CanAccess(req.Permission) {
		return Decision{State: StateAuthenticatedDenied, Redirect: UnauthorizedPath}
	}
	return Decision{State: StateAuthenticatedAllowed}
}
