package services

import "testing"

func TestAllowed(t *testing.T) {
	cases := []struct {
		name   string
		role   string
		action Action
		caller string
		owner  string
		want   bool
	}{
		{"admin updates informant", RoleAdmin, ActionInformantUpdate, "A1", "", true},
		{"director updates informant", RoleDirector, ActionInformantUpdate, "D1", "", true},
		{"enumerator cannot update informant", RoleUser, ActionInformantUpdate, "U1", "", false},
		{"enumerator cannot delete informant", RoleUser, ActionInformantDelete, "U1", "", false},
		{"director tags menu", RoleDirector, ActionMenuStatus, "D1", "", true},
		{"enumerator cannot tag menu", RoleUser, ActionMenuStatus, "U1", "", false},
		{"admin deletes any menu", RoleAdmin, ActionMenuDelete, "A1", "U2", true},
		{"owner deletes own menu", RoleUser, ActionMenuDelete, "U1", "U1", true},
		{"enumerator cannot delete others menu", RoleUser, ActionMenuDelete, "U1", "U2", false},
		{"director cannot delete others menu", RoleDirector, ActionMenuDelete, "D1", "U2", false},
		{"owner updates own menu", RoleUser, ActionMenuUpdate, "U1", "U1", true},
		{"director updates any menu", RoleDirector, ActionMenuUpdate, "D1", "U2", true},
		{"only admin manages users", RoleDirector, ActionUserManage, "D1", "", false},
		{"admin manages users", RoleAdmin, ActionUserManage, "A1", "", true},
		{"unknown action denied", RoleAdmin, Action("nope"), "A1", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Allowed(tc.role, tc.action, tc.caller, tc.owner); got != tc.want {
				t.Fatalf("Allowed(%q, %q, %q, %q) = %v, want %v",
					tc.role, tc.action, tc.caller, tc.owner, got, tc.want)
			}
		})
	}
}
