package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSection(t *testing.T) {
	for _, s := range AllSections {
		assert.True(t, IsValidSection(s), s)
	}
	assert.False(t, IsValidSection("finance"))
	assert.False(t, IsValidSection(""))
	assert.False(t, IsValidSection("Tabligh"), "section keys are lowercase")
}

func TestSectionHasUnitScope(t *testing.T) {
	assert.False(t, SectionHasUnitScope(SectionTablighDigital))
	for _, s := range AllSections {
		if s == SectionTablighDigital {
			continue
		}
		assert.True(t, SectionHasUnitScope(s), s)
	}
}

func TestSectionForRole(t *testing.T) {
	assert.Equal(t, SectionTalim, SectionForRole(RoleTalim))
	assert.Equal(t, SectionTabligh, SectionForRole(RoleTabligh))
	assert.Equal(t, "", SectionForRole(RoleAdmin), "admin is not tied to one section")
	assert.Equal(t, "", SectionForRole(RoleTajneed), "tajneed has no report section")
	assert.Equal(t, "", SectionForRole("unknown"))
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleAdmin))
	assert.True(t, IsValidRole(RoleMaal))
	assert.False(t, IsValidRole("superadmin"))
	assert.False(t, IsValidRole(""))
}
