package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"0":       RoleUser,
		"1":       RolePartner,
		"2":       RoleTeam,
		"user":    RoleUser,
		"Partner": RolePartner,
		" TEAM ":  RoleTeam,
	}
	for in, want := range cases {
		got, err := ParseRole(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"3", "255", "256", "-1", "", "admin"} {
		_, err := ParseRole(in)
		assert.Error(t, err, in)
	}
}

func TestRolesAreContractIndices(t *testing.T) {
	for i, r := range Roles() {
		assert.True(t, r.Valid())
		assert.Equal(t, uint8(i), uint8(r))
		assert.LessOrEqual(t, uint8(r), uint8(2))
	}
	assert.False(t, Role(3).Valid())
	assert.Equal(t, "Partner", RolePartner.String())
	assert.Equal(t, "Role(7)", Role(7).String())
}
