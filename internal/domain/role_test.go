package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Order(t *testing.T) {
	tests := []struct {
		name string
		role Role
		min  Role
		want bool
	}{
		{"user meets user", RoleUser, RoleUser, true},
		{"user below admin", RoleUser, RoleAdmin, false},
		{"user below super admin", RoleUser, RoleSuperAdmin, false},
		{"admin meets user", RoleAdmin, RoleUser, true},
		{"admin meets admin", RoleAdmin, RoleAdmin, true},
		{"admin below super admin", RoleAdmin, RoleSuperAdmin, false},
		{"super admin meets everything", RoleSuperAdmin, RoleSuperAdmin, true},
		{"unknown role never authorized", Role("ROOT"), RoleUser, false},
		{"unknown minimum never met", RoleSuperAdmin, Role("ROOT"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.min))
		})
	}
}

// Authorization is monotonic: a role that satisfies some minimum also
// satisfies every lower minimum.
func TestRole_Monotonic(t *testing.T) {
	order := []Role{RoleUser, RoleAdmin, RoleSuperAdmin}

	for i, role := range order {
		for j, min := range order {
			assert.Equal(t, i >= j, role.AtLeast(min), "role %s vs min %s", role, min)
		}
	}
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleSuperAdmin.Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("admin").Valid())
}
