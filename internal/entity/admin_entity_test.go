package entity

import (
	"testing"
)

func TestRoleRank(t *testing.T) {
	tests := []struct {
		role AdminRole
		want int
	}{
		{AdminRoleSupport, 0},
		{AdminRoleAdmin, 1},
		{AdminRoleSuperAdmin, 2},
		{AdminRole("intern"), -1},
		{AdminRole(""), -1},
	}

	for _, tt := range tests {
		if got := RoleRank(tt.role); got != tt.want {
			t.Errorf("RoleRank(%q) = %d, want %d", tt.role, got, tt.want)
		}
	}
}

func TestAtLeast(t *testing.T) {
	tests := []struct {
		name     string
		role     AdminRole
		required AdminRole
		want     bool
	}{
		{"support meets support", AdminRoleSupport, AdminRoleSupport, true},
		{"support below admin", AdminRoleSupport, AdminRoleAdmin, false},
		{"admin meets admin", AdminRoleAdmin, AdminRoleAdmin, true},
		{"admin below super_admin", AdminRoleAdmin, AdminRoleSuperAdmin, false},
		{"super_admin meets everything", AdminRoleSuperAdmin, AdminRoleSupport, true},
		{"unknown role never passes", AdminRole("intern"), AdminRoleSupport, false},
		{"unknown role fails even unknown requirement", AdminRole("intern"), AdminRole("ghost"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.role.AtLeast(tt.required); got != tt.want {
				t.Errorf("%q.AtLeast(%q) = %v, want %v", tt.role, tt.required, got, tt.want)
			}
		})
	}
}
