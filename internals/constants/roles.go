package constants

import "fmt"

// Role error message templates
const (
	ErrOnlyAdminsCanAccess  = "Only admin accounts may access %s."
	ErrSectionNotPermitted  = "Your role does not permit access to the %s section."
	ErrUnknownRole          = "Unknown role %q."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSection(section string) string {
	return fmt.Sprintf(ErrSectionNotPermitted, section)
}

// ==========================
// Roles
// ==========================
const (
	RoleAdmin = "admin"

	// Department roles mirror the report section keys.
	RoleTajneed   = "tajneed"
	RoleMaal      = "maal"
	RoleTabligh   = "tabligh"
	RoleTarbiyyat = "tarbiyyat"
	RoleTalim     = "talim"
	RoleUmumi     = "umumi"
	RoleIsaar     = "isaar"
	RoleSihat     = "sihat"
	RoleItaat     = "itaat"
)

var AllRoles = []string{
	RoleAdmin,
	RoleTajneed,
	RoleMaal,
	RoleTabligh,
	RoleTarbiyyat,
	RoleTalim,
	RoleUmumi,
	RoleIsaar,
	RoleSihat,
	RoleItaat,
}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
