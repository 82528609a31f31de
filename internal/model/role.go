package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Role is the beneficiary category understood by the vesting contract (uint8 on chain).
type Role uint8

const (
	RoleUser Role = iota
	RolePartner
	RoleTeam
)

var roleNames = [...]string{"User", "Partner", "Team"}

// Roles lists every role in contract index order.
func Roles() []Role {
	return []Role{RoleUser, RolePartner, RoleTeam}
}

// Valid reports whether r is one of the three contract roles.
func (r Role) Valid() bool {
	return int(r) < len(roleNames)
}

func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
	return roleNames[r]
}

// ParseRole accepts a contract index ("0".."2") or a role name, case-insensitive.
func ParseRole(s string) (Role, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		if r := Role(n); r.Valid() {
			return r, nil
		}
		return 0, fmt.Errorf("role index %d out of range 0-%d", n, len(roleNames)-1)
	}
	for i, name := range roleNames {
		if strings.EqualFold(s, name) {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", s)
}
