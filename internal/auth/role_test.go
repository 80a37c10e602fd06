package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleLevel(t *testing.T) {
	assert.Equal(t, 0, RoleUser.Level())
	assert.Equal(t, 1, RoleEditor.Level())
	assert.Equal(t, 2, RoleAdmin.Level())
	assert.Equal(t, -1, Role("superuser").Level())
	assert.Equal(t, -1, Role("").Level())
}

func TestRoleIsValid(t *testing.T) {
	for _, r := range AllRoles {
		assert.True(t, r.IsValid(), "role %s should be valid", r)
	}
	assert.False(t, Role("owner").IsValid())
}

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, RoleEditor.AtLeast(RoleEditor))
	assert.True(t, RoleAdmin.AtLeast(RoleEditor))
	assert.False(t, RoleUser.AtLeast(RoleEditor))

	assert.True(t, RoleUser.AtLeast(RoleUser))
	assert.False(t, Role("unknown").AtLeast(RoleUser))
}
