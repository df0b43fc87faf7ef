package model

import "strings"

// Role is the closed set of access roles. Membership-in-set semantics only:
// there is no numeric hierarchy between roles.
type Role string

const (
	RoleSuperadmin   Role = "superadmin"
	RoleAdmin        Role = "admin"
	RoleManager      Role = "manager"
	RoleSupermanager Role = "supermanager"
	RoleAgent        Role = "agent"
	RoleProvider     Role = "provider"
	RoleDriver       Role = "driver"
)

// Role groups reused as per-endpoint allowed lists across the route table.
var (
	AdminRoles   = []Role{RoleSuperadmin, RoleAdmin}
	ManagerRoles = []Role{RoleSupermanager, RoleManager, RoleAgent}
	AllRoles     = []Role{
		RoleSuperadmin,
		RoleAdmin,
		RoleManager,
		RoleSupermanager,
		RoleAgent,
		RoleProvider,
		RoleDriver,
	}
)

// In reports whether r is a member of the given group.
func (r Role) In(group []Role) bool {
	for _, allowed := range group {
		if r == allowed {
			return true
		}
	}
	return false
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r.In(AllRoles)
}

// RoleListToStr renders a group for log and doc messages.
func RoleListToStr(group []Role) string {
	names := make([]string, len(group))
	for i, r := range group {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
