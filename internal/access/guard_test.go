package access

import "testing"

func TestGuard(t *testing.T) {
	table := DefaultTable()
	admin := identity("a1", RoleAdmin)
	hr := identity("h1", RoleHR)
	user := identity("u1", RoleUser)

	tests := []struct {
		name          string
		authenticated bool
		identity      *Identity
		req           Requirement
		wantState     GuardState
		wantRedirect  string
	}{
		{
			name:         "not_authenticated",
			identity:     admin,
			wantState:    StateUnauthenticated,
			wantRedirect: LoginPath,
		},
		{
			name:          "authenticated_without_identity",
			authenticated: true,
			wantState:     StateUnauthenticated,
			wantRedirect:  LoginPath,
		},
		{
			name:          "no_requirements",
			authenticated: true,
			identity:      user,
			wantState:     StateAuthenticatedAllowed,
		},
		{
			name:          "role_mismatch",
			authenticated: true,
			identity:      user,
			req:           Requirement{Role: RoleAdmin},
			wantState:     StateAuthenticatedDenied,
			wantRedirect:  UnauthorizedPath,
		},
		{
			name:          "role_mismatch_masks_granted_permission",
			authenticated: true,
			identity:      user,
			req:           Requirement{Role: RoleAdmin, Permission: ActionCreateContact},
			wantState:     StateAuthenticatedDenied,
			wantRedirect:  UnauthorizedPath,
		},
		{
			name:          "permission_missing",
			authenticated: true,
			identity:      hr,
			req:           Requirement{Permission: ActionManagePermissions},
			wantState:     StateAuthenticatedDenied,
			wantRedirect:  UnauthorizedPath,
		},
		{
			name:          "unknown_permission",
			authenticated: true,
			identity:      admin,
			req:           Requirement{Permission: "launch_rockets"},
			wantState:     StateAuthenticatedDenied,
			wantRedirect:  UnauthorizedPath,
		},
		{
			name:          "role_and_permission_match",
			authenticated: true,
			identity:      admin,
			req:           Requirement{Role: RoleAdmin, Permission: ActionManageUsers},
			wantState:     StateAuthenticatedAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Guard(tt.authenticated, tt.identity, table, tt.req)
			if d.State != tt.wantState {
				t.Errorf("state = %s, want %s", d.State, tt.wantState)
			}
			if d.Redirect != tt.wantRedirect {
				t.Errorf("redirect = %q, want %q", d.Redirect, tt.wantRedirect)
			}
			if d.Allowed() != (tt.wantState == StateAuthenticatedAllowed) {
				t.Errorf("Allowed() = %v for state %s", d.Allowed(), d.State)
			}
		})
	}
}

func TestGuardAdminRoleRejectsUserRegardlessOfPermission(t *testing.T) {
	table := DefaultTable()
	user := identity("u1", RoleUser)

	perms := append([]string{"", "launch_rockets"}, Actions...)
	for _, p := range perms {
		// Even a permission granted to the User role cannot lift a role mismatch.
		assertNoError(t, tableGrantAll(table, RoleUser))
		d := Guard(true, user, table, Requirement{Role: RoleAdmin, Permission: p})
		if d.State != StateAuthenticatedDenied || d.Redirect != UnauthorizedPath {
			t.Errorf("permission %q: expected unauthorized redirect, got %+v", p, d)
		}
	}
}

func tableGrantAll(table Table, role Role) error {
	for _, a := range Actions {
		if err := table.Set(role, KindActions, a, true); err != nil {
			return err
		}
	}
	return nil
}

func TestNavigate(t *testing.T) {
	table := DefaultTable()

	t.Run("unknown_page", func(t *testing.T) {
		d := Navigate("billing", true, identity("a", RoleAdmin), table)
		if d.State != StateNotFound || d.Redirect != NotFoundPath {
			t.Errorf("expected not-found redirect, got %+v", d)
		}
	})

	t.Run("unknown_page_unauthenticated", func(t *testing.T) {
		d := Navigate("billing", false, nil, table)
		if d.Redirect != NotFoundPath {
			t.Errorf("expected not-found redirect, got %+v", d)
		}
	})

	t.Run("permissions_page", func(t *testing.T) {
		if !Navigate(PagePermissions, true, identity("a", RoleAdmin), table).Allowed() {
			t.Error("expected Admin to reach the permissions page")
		}
		d := Navigate(PagePermissions, true, identity("h", RoleHR), table)
		if d.Redirect != UnauthorizedPath {
			t.Errorf("expected HR to be redirected to unauthorized, got %+v", d)
		}
	})

	t.Run("login_redirect", func(t *testing.T) {
		d := Navigate(PageDashboard, false, nil, table)
		if d.Redirect != LoginPath {
			t.Errorf("expected login redirect, got %+v", d)
		}
	})
}

func TestVisibleRoutes(t *testing.T) {
	table := DefaultTable()

	names := func(rs []Route) map[string]bool {
		m := make(map[string]bool, len(rs))
		for _, r := range rs {
			m[r.Name] = true
		}
		return m
	}

	admin := names(VisibleRoutes(identity("a", RoleAdmin), table))
	if len(admin) != len(Routes()) {
		t.Errorf("expected Admin to see all %d pages, got %d", len(Routes()), len(admin))
	}

	user := names(VisibleRoutes(identity("u", RoleUser), table))
	for _, hidden := range []string{PageUsers, PagePermissions, PageReports} {
		if user[hidden] {
			t.Errorf("expected User not to see %s", hidden)
		}
	}
	if !user[PageContactNew] || !user[PageActivity] {
		t.Errorf("expected User to see contact_new and activity, got %v", user)
	}

	if len(VisibleRoutes(nil, table)) != 0 {
		t.Error("expected no visible pages without an identity")
	}
}

func TestRequirementForPanicsOnUnknownPage(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown page")
		}
	}()
	RequirementFor("nope")
}
