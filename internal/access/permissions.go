// Package access implements the role-based access model: the permission
// table, the evaluator that answers capability questions for an identity,
// the route guard, and viewer-scoped activity log filtering.
//
// Everything in this package is pure. Persistence and serialization of
// mutations live in the services layer.
package access

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	apperrors "rolecrm/internal/errors"
)

// Role is the closed set of identity roles.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleHR    Role = "HR"
	RoleUser  Role = "User"
)

// Roles lists every role in display order.
var Roles = []Role{RoleAdmin, RoleHR, RoleUser}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return slices.Contains(Roles, r)
}

// Kind selects which flag map of a Record an update targets.
type Kind string

const (
	KindActions Kind = "actions"
	KindFields  Kind = "fields"
)

// Recognized action names.
const (
	ActionManageUsers       = "manage_users"
	ActionManagePermissions = "manage_permissions"
	ActionViewReports       = "view_reports"
	ActionCreateContact     = "create_contact"
	ActionEditContact       = "edit_contact"
	ActionDeleteContact     = "delete_contact"
	ActionExportContacts    = "export_contacts"
	ActionViewActivityLogs  = "view_activity_logs"
	ActionClearActivityLogs = "clear_activity_logs"
)

// Actions lists every recognized action name.
var Actions = []string{
	ActionManageUsers,
	ActionManagePermissions,
	ActionViewReports,
	ActionCreateContact,
	ActionEditContact,
	ActionDeleteContact,
	ActionExportContacts,
	ActionViewActivityLogs,
	ActionClearActivityLogs,
}

// Contact attributes with per-role view/edit flags.
const (
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldCompany = "company"
	FieldNotes   = "notes"
	FieldTags    = "tags"
)

// ContactFields lists the contact attributes gated by field flags.
var ContactFields = []string{FieldEmail, FieldPhone, FieldCompany, FieldNotes, FieldTags}

// Categories lists the known contact categories.
var Categories = []string{"Client", "Partner", "Vendor", "Lead", "Internal"}

// ViewKey returns the field-flag name for viewing field.
func ViewKey(field string) string { return "view_" + field }

// EditKey returns the field-flag name for editing field.
func EditKey(field string) string { return "edit_" + field }

// FieldKeys lists every recognized field-flag name.
func FieldKeys() []string {
	keys := make([]string, 0, len(ContactFields)*2)
	for _, f := range ContactFields {
		keys = append(keys, ViewKey(f), EditKey(f))
	}
	return keys
}

// IsKnownKey reports whether key is a recognized name for kind.
func IsKnownKey(kind Kind, key string) bool {
	switch kind {
	case KindActions:
		return slices.Contains(Actions, key)
	case KindFields:
		return slices.Contains(FieldKeys(), key)
	}
	return false
}

// Record holds the capabilities granted to one role.
type Record struct {
	Actions    map[string]bool `json:"actions" yaml:"actions"`
	Fields     map[string]bool `json:"fields" yaml:"fields"`
	Categories []string        `json:"categories" yaml:"categories"`
}

func (r Record) clone() Record {
	out := Record{
		Actions:    make(map[string]bool, len(r.Actions)),
		Fields:     make(map[string]bool, len(r.Fields)),
		Categories: slices.Clone(r.Categories),
	}
	for k, v := range r.Actions {
		out.Actions[k] = v
	}
	for k, v := range r.Fields {
		out.Fields[k] = v
	}
	return out
}

// complete reports whether r has an entry for every recognized name.
func (r Record) complete() bool {
	for _, a := range Actions {
		if _, ok := r.Actions[a]; !ok {
			return false
		}
	}
	for _, f := range FieldKeys() {
		if _, ok := r.Fields[f]; !ok {
			return false
		}
	}
	return true
}

// Table maps each role to its capability record.
type Table map[Role]Record

//go:embed defaults.yaml
var defaultsYAML []byte

var defaultTable = mustParseDefaults(defaultsYAML)

func mustParseDefaults(data []byte) Table {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		panic(fmt.Sprintf("access: parsing default permission table: %v", err))
	}
	if err := t.Validate(); err != nil {
		panic(fmt.Sprintf("access: default permission table: %v", err))
	}
	return t
}

// DefaultTable returns a fresh copy of the shipped permission table.
func DefaultTable() Table {
	return defaultTable.Clone()
}

// Clone returns a deep copy of t.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for role, rec := range t {
		out[role] = rec.clone()
	}
	return out
}

// Validate checks that t has exactly one complete record per role.
func (t Table) Validate() error {
	if len(t) != len(Roles) {
		return fmt.Errorf("expected %d roles, got %d", len(Roles), len(t))
	}
	for _, role := range Roles {
		rec, ok := t[role]
		if !ok {
			return fmt.Errorf("missing record for role %s", role)
		}
		if !rec.complete() {
			return fmt.Errorf("incomplete record for role %s", role)
		}
	}
	return nil
}

// Get returns a copy of the record for role.
func (t Table) Get(role Role) (Record, error) {
	rec, ok := t[role]
	if !role.Valid() || !ok {
		return Record{}, apperrors.ErrUnknownRole
	}
	return rec.clone(), nil
}

// Set updates one flag in place. Unrecognized keys are rejected so that
// the table never holds names the evaluator does not know about.
func (t Table) Set(role Role, kind Kind, key string, value bool) error {
	rec, ok := t[role]
	if !role.Valid() || !ok {
		return apperrors.ErrUnknownRole
	}
	if kind != KindActions && kind != KindFields {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "kind must be actions or fields")
	}
	if !IsKnownKey(kind, key) {
		return apperrors.WithMessage(apperrors.ErrUnknownPermission, fmt.Sprintf("Unknown %s key %q", kind, key))
	}

	if kind == KindActions {
		rec.Actions[key] = value
	} else {
		rec.Fields[key] = value
	}
	return nil
}
