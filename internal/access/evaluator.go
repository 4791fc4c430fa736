package access

import "slices"

// Identity is the authenticated user of the active session.
type Identity struct {
	ID                string   `json:"id"`
	Username          string   `json:"username"`
	Name              string   `json:"name"`
	Role              Role     `json:"role"`
	AllowedCategories []string `json:"allowed_categories"`
}

// Evaluator answers capability questions for one identity against one
// permission table. A nil identity or an unknown role denies everything.
type Evaluator struct {
	identity *Identity
	table    Table
}

// NewEvaluator creates an Evaluator. Nothing is cached; every call reads
// the table as it is at that moment.
func NewEvaluator(identity *Identity, table Table) Evaluator {
	return Evaluator{identity: identity, table: table}
}

// Identity returns the evaluated identity, or nil.
func (e Evaluator) Identity() *Identity {
	return e.identity
}

func (e Evaluator) record() (Record, bool) {
	if e.identity == nil || e.table == nil {
		return Record{}, false
	}
	rec, ok := e.table[e.identity.Role]
	return rec, ok
}

// CanAccess reports whether the identity's role grants action.
func (e Evaluator) CanAccess(action string) bool {
	rec, ok := e.record()
	return ok && rec.Actions[action]
}

// CanView reports whether the identity may see field.
func (e Evaluator) CanView(field string) bool {
	rec, ok := e.record()
	return ok && rec.Fields[ViewKey(field)]
}

// CanEdit reports whether the identity may change field.
func (e Evaluator) CanEdit(field string) bool {
	rec, ok := e.record()
	return ok && rec.Fields[EditKey(field)]
}

// HasCategory checks the identity's own category set, not the role's
// default list.
func (e Evaluator) HasCategory(category string) bool {
	if e.identity == nil {
		return false
	}
	return slices.Contains(e.identity.AllowedCategories, category)
}

// Capabilities is a snapshot of every recognized flag for an identity.
type Capabilities struct {
	Role       Role            `json:"role"`
	Actions    map[string]bool `json:"actions"`
	Fields     map[string]bool `json:"fields"`
	Categories []string        `json:"categories"`
}

// Capabilities evaluates every recognized action and field flag.
func (e Evaluator) Capabilities() Capabilities {
	caps := Capabilities{
		Actions:    make(map[string]bool, len(Actions)),
		Fields:     make(map[string]bool, len(ContactFields)*2),
		Categories: []string{},
	}
	if e.identity != nil {
		caps.Role = e.identity.Role
		caps.Categories = append(caps.Categories, e.identity.AllowedCategories...)
	}
	for _, a := range Actions {
		caps.Actions[a] = e.CanAccess(a)
	}
	for _, f := range ContactFields {
		caps.Fields[ViewKey(f)] = e.CanView(f)
		caps.Fields[EditKey(f)] = e.CanEdit(f)
	}
	return caps
}
