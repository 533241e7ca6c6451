package constants

// Departmental report section keys. These double as sub-user role names
// (see roles.go): a department sub-user may only reach its own section.
const (
	SectionTabligh        = "tabligh"
	SectionTarbiyyat      = "tarbiyyat"
	SectionTalim          = "talim"
	SectionUmumi          = "umumi"
	SectionIsaar          = "isaar"
	SectionSihat          = "sihat"
	SectionItaat          = "itaat"
	SectionTablighDigital = "tabligh_digital"
)

var AllSections = []string{
	SectionTabligh,
	SectionTarbiyyat,
	SectionTalim,
	SectionUmumi,
	SectionIsaar,
	SectionSihat,
	SectionItaat,
	SectionTablighDigital,
}

func IsValidSection(key string) bool {
	for _, s := range AllSections {
		if s == key {
			return true
		}
	}
	return false
}

// SectionHasUnitScope reports whether a section is keyed by region+majlis.
// tabligh_digital is national: keyed by month/year only.
func SectionHasUnitScope(key string) bool {
	return key != SectionTablighDigital
}

// SectionForRole maps a sub-user role to the single report section it may
// reach. Admin has no single section (full access); unknown roles get "".
func SectionForRole(role string) string {
	switch role {
	case RoleTabligh:
		return SectionTabligh
	case RoleTarbiyyat:
		return SectionTarbiyyat
	case RoleTalim:
		return SectionTalim
	case RoleUmumi:
		return SectionUmumi
	case RoleIsaar:
		return SectionIsaar
	case RoleSihat:
		return SectionSihat
	case RoleItaat:
		return SectionItaat
	default:
		return ""
	}
}
