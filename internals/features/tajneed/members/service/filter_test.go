package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ansarullah_backend/internals/features/tajneed/members/model"
)

func TestMatchScope(t *testing.T) {
	id := uuid.New()

	assert.True(t, MatchScope("", &id, "Nairobi"), "empty filter passes")
	assert.True(t, MatchScope("all", &id, "Nairobi"))
	assert.True(t, MatchScope("ALL", &id, "Nairobi"))

	assert.True(t, MatchScope(id.String(), &id, "Nairobi"), "matches by id")
	assert.True(t, MatchScope("nairobi", &id, "Nairobi"), "matches by name, case-insensitive")
	assert.True(t, MatchScope("Nairobi", nil, "Nairobi"), "legacy rows with no FK match by name")

	assert.False(t, MatchScope("Mombasa", &id, "Nairobi"))
	assert.False(t, MatchScope(uuid.NewString(), &id, "Nairobi"))
}

func TestMemberFilterConjunctive(t *testing.T) {
	regionID := uuid.New()
	birth := date(1960, time.January, 10) // 65 in 2025, Saf-e-Awwal
	asOf := date(2025, time.July, 1)

	m := model.MemberModel{
		MemberNo:         "MA017",
		MemberFullName:   "Ahmed Omar",
		MemberPhone:      "+254700000001",
		MemberRegionID:   &regionID,
		MemberRegionName: "Coast",
		MemberMajlisName: "Mombasa Central",
		MemberBirthDate:  &birth,
		MemberIsActive:   true,
	}

	assert.True(t, MemberFilter{}.Match(m, asOf))
	assert.True(t, MemberFilter{Region: "coast", Category: "Saf-e-Awwal", Status: "active"}.Match(m, asOf))
	assert.True(t, MemberFilter{Search: "ma017"}.Match(m, asOf))
	assert.True(t, MemberFilter{Search: "omar"}.Match(m, asOf))
	assert.True(t, MemberFilter{Search: "+254700"}.Match(m, asOf))

	assert.False(t, MemberFilter{Region: "coast", Status: "inactive"}.Match(m, asOf),
		"one failing predicate rejects the row")
	assert.False(t, MemberFilter{Category: "General"}.Match(m, asOf))
	assert.False(t, MemberFilter{Majlis: "Nairobi West"}.Match(m, asOf))
}

func TestApplyMemberFilter(t *testing.T) {
	asOf := date(2025, time.July, 1)
	members := []model.MemberModel{
		{MemberNo: "MA001", MemberFullName: "Ali", MemberRegionName: "Coast", MemberIsActive: true},
		{MemberNo: "MA002", MemberFullName: "Bashir", MemberRegionName: "Nairobi", MemberIsActive: true},
		{MemberNo: "MA003", MemberFullName: "Chege", MemberRegionName: "Coast", MemberIsActive: false},
	}

	out := ApplyMemberFilter(members, MemberFilter{Region: "Coast", Status: "active"}, asOf)
	assert.Len(t, out, 1)
	assert.Equal(t, "MA001", out[0].MemberNo)
}
