package auth

import (
	"fmt"
	"slices"
	"strings"
)

// Role is one of the fixed roles a directory user may hold.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleAccountant Role = "Accountant"
	RoleCashier    Role = "Cashier"
)

// Roles lists every assignable role in display order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleAccountant, RoleCashier}
}

// ParseRole matches s case-insensitively against the known roles.
// An empty string yields the empty Role (no role) without error.
func ParseRole(s string) (Role, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, r := range Roles() {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Policy is the set of roles allowed to reach a group of endpoints.
type Policy struct {
	Name  string
	Roles []Role
}

// Allows reports whether role satisfies the policy. The empty role never does.
func (p Policy) Allows(role Role) bool {
	return role != "" && slices.Contains(p.Roles, role)
}

// Policies used by the route groups.
var (
	AdminOnly         = Policy{Name: "admin_only", Roles: []Role{RoleAdmin}}
	AccountantOrAdmin = Policy{Name: "accountant_or_admin", Roles: []Role{RoleAdmin, RoleAccountant}}
	CashierOrAdmin    = Policy{Name: "cashier_or_admin", Roles: []Role{RoleAdmin, RoleCashier}}
	AllRoles          = Policy{Name: "all_roles", Roles: []Role{RoleAdmin, RoleAccountant, RoleCashier}}
)
