package access

import "time"

// LogEntry is one activity log record. Entries are never mutated.
type LogEntry struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Actor     string         `json:"actor"`
	Action    string         `json:"action"`
	Meta      map[string]any `json:"meta,omitempty"`
}

// Activity actions recorded by the services.
const (
	LogLogin            = "login"
	LogLogout           = "logout"
	LogThemeChange      = "theme_change"
	LogContactCreate    = "contact_create"
	LogContactUpdate    = "contact_update"
	LogContactDelete    = "contact_delete"
	LogPermissionChange = "permission_change"
	LogPermissionReset  = "permission_reset"
	LogUserCreate       = "user_create"
	LogUserDelete       = "user_delete"
)

// FilterForViewer returns the entries viewer may see, preserving order.
//
// Admin sees everything. HR sees entries whose actor resolves to an HR or
// User identity in users. User sees only their own entries. Actors that
// do not resolve are visible to Admin only, and a missing or unknown
// viewer sees nothing.
func FilterForViewer(entries []LogEntry, viewer *Identity, users []Identity) []LogEntry {
	out := make([]LogEntry, 0, len(entries))
	if viewer == nil {
		return out
	}

	switch viewer.Role {
	case RoleAdmin:
		return append(out, entries...)
	case RoleHR:
		roles := make(map[string]Role, len(users))
		for _, u := range users {
			roles[u.ID] = u.Role
		}
		for _, e := range entries {
			role, ok := roles[e.Actor]
			if ok && (role == RoleHR || role == RoleUser) {
				out = append(out, e)
			}
		}
	case RoleUser:
		for _, e := range entries {
			if e.Actor == viewer.ID {
				out = append(out, e)
			}
		}
	}
	return out
}
