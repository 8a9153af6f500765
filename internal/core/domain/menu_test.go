package domain

import "testing"

func TestMenuFor_KnownRoles(t *testing.T) {
	expected := map[Role][]string{
		RoleAdmin: {
			"/admin/dashboard",
			"/admin/users",
			"/admin/patients",
			"/admin/doctors",
			"/admin/appointments",
		},
		RoleDoctor: {
			"/doctor/dashboard",
			"/doctor/appointments",
			"/doctor/patients",
		},
		RolePatient: {
			"/patient/dashboard",
			"/patient/book-appointment",
			"/patient/medical-history",
		},
	}

	for role, paths := range expected {
		menu := MenuFor(role)
		if len(menu) != len(paths) {
			t.Fatalf("%s: expected %d entries, got %d", role, len(paths), len(menu))
		}
		for i, item := range menu {
			if item.Path != paths[i] {
				t.Fatalf("%s: entry %d is %q, expected %q", role, i, item.Path, paths[i])
			}
			if item.Label == "" || item.Icon == "" {
				t.Fatalf("%s: entry %q missing label or icon", role, item.Path)
			}
		}
		if menu[0].Label != "Dashboard" {
			t.Fatalf("%s: first entry must be the dashboard, got %q", role, menu[0].Label)
		}
	}
}

func TestMenuFor_UnknownRole(t *testing.T) {
	for _, role := range []Role{"", "SUPERUSER", "admin"} {
		if menu := MenuFor(role); len(menu) != 0 {
			t.Fatalf("expected empty menu for %q, got %d entries", role, len(menu))
		}
	}
}

func TestRole_DashboardPath(t *testing.T) {
	cases := map[Role]string{
		RoleAdmin:   "/admin/dashboard",
		RoleDoctor:  "/doctor/dashboard",
		RolePatient: "/patient/dashboard",
		"NURSE":     "/login",
		"":          "/login",
	}
	for role, path := range cases {
		if got := role.DashboardPath(); got != path {
			t.Fatalf("%q: expected %q, got %q", role, path, got)
		}
	}
}

func TestRole_Known(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleDoctor, RolePatient} {
		if !role.Known() {
			t.Fatalf("%s should be known", role)
		}
	}
	// Role matching is case-sensitive; lowercase variants are not trusted.
	for _, role := range []Role{"", "patient", "ROOT"} {
		if role.Known() {
			t.Fatalf("%q should not be known", role)
		}
	}
}
