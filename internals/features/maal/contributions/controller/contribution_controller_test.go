package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ansarullah_backend/internals/features/maal/contributions/model"
)

// dryRunDB opens a lazy Postgres session that only builds SQL; nothing is
// executed and no connection is made.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "host=localhost user=test password=test dbname=test port=5432 sslmode=disable",
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func TestScopeMembersMatchesIdOrName(t *testing.T) {
	db := dryRunDB(t)

	var rows []model.ContributionModel
	stmt := db.Model(&model.ContributionModel{}).
		Where("contribution_member_id IN (?)",
			scopeMembers(db, "member_majlis_id", "member_majlis_name", "Mombasa Central")).
		Find(&rows).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "member_majlis_id::text = ")
	assert.Contains(t, sql, "LOWER(member_majlis_name) = LOWER(")
	assert.Contains(t, sql, `"members"`, "filter resolves through the member register")

	var bound int
	for _, v := range stmt.Vars {
		if v == "Mombasa Central" {
			bound++
		}
	}
	assert.Equal(t, 2, bound, "value binds once per representation")
}

func TestScopeMembersRegionColumns(t *testing.T) {
	db := dryRunDB(t)

	var rows []model.ContributionModel
	stmt := db.Model(&model.ContributionModel{}).
		Where("contribution_member_id IN (?)",
			scopeMembers(db, "member_region_id", "member_region_name", "Coast")).
		Find(&rows).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "member_region_id::text = ")
	assert.Contains(t, sql, "LOWER(member_region_name) = LOWER(")
}
