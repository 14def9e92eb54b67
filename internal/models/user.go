package models

// UserRole is the role attached to an authenticated session
type UserRole string

const (
	RoleUser       UserRole = "USER"
	RoleJournalist UserRole = "JOURNALIST"
	RoleAdmin      UserRole = "ADMIN"
	RoleSuperAdmin UserRole = "SUPERADMIN"
)

// ValidRoles defines allowed user roles
var ValidRoles = map[UserRole]bool{
	RoleUser:       true,
	RoleJournalist: true,
	RoleAdmin:      true,
	RoleSuperAdmin: true,
}

// DashboardRoles may enter the editorial dashboard
var DashboardRoles = []UserRole{RoleJournalist, RoleAdmin, RoleSuperAdmin}

// EditorRoles may delete content
var EditorRoles = []UserRole{RoleAdmin, RoleSuperAdmin}
