package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeBirthdayNotYetReached(t *testing.T) {
	birth := date(2000, time.June, 15)
	assert.Equal(t, 24, Age(birth, date(2025, time.June, 14)))
	assert.Equal(t, 25, Age(birth, date(2025, time.June, 15)))
	assert.Equal(t, 25, Age(birth, date(2025, time.June, 16)))
}

func TestCategoryForAge(t *testing.T) {
	assert.Equal(t, CategoryGeneral, CategoryForAge(30))
	assert.Equal(t, CategoryGeneral, CategoryForAge(39))
	assert.Equal(t, CategorySafDom, CategoryForAge(40))
	assert.Equal(t, CategorySafDom, CategoryForAge(55))
	assert.Equal(t, CategorySafAwwal, CategoryForAge(56))
}

func TestDeriveCategoryFallsBackToStored(t *testing.T) {
	assert.Equal(t, "Saf-e-Dom", DeriveCategory(nil, "Saf-e-Dom", date(2025, time.January, 1)))
}

func TestDeriveCategoryMovesTiersWithoutWrites(t *testing.T) {
	// Born 1970: 55 in 2025 (Saf-e-Dom), 56 in 2026 (Saf-e-Awwal). The stored
	// label never changes; only the asOf date does.
	birth := date(1970, time.March, 1)
	stored := CategoryGeneral

	assert.Equal(t, CategorySafDom, DeriveCategory(&birth, stored, date(2025, time.June, 1)))
	assert.Equal(t, CategorySafAwwal, DeriveCategory(&birth, stored, date(2026, time.June, 1)))
}
