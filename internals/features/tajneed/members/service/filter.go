package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"ansarullah_backend/internals/features/tajneed/members/model"
)

// MemberFilter holds list-screen filters. Every field is pass-through when
// empty or "all"; the remaining predicates are conjunctive.
type MemberFilter struct {
	Region   string // region id or name
	Majlis   string // majlis id or name
	Category string
	Status   string // active|inactive
	Search   string
}

// MatchScope matches a filter value against an entity that may be recorded
// by FK id or only by a denormalized name (legacy rows), so both
// representations are checked.
func MatchScope(value string, id *uuid.UUID, name string) bool {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "all") {
		return true
	}
	if id != nil && id.String() == value {
		return true
	}
	return strings.EqualFold(name, value)
}

func (f MemberFilter) Match(m model.MemberModel, asOf time.Time) bool {
	if !MatchScope(f.Region, m.MemberRegionID, m.MemberRegionName) {
		return false
	}
	if !MatchScope(f.Majlis, m.MemberMajlisID, m.MemberMajlisName) {
		return false
	}

	if f.Category != "" && !strings.EqualFold(f.Category, "all") {
		if !strings.EqualFold(DeriveCategory(m.MemberBirthDate, m.MemberCategory, asOf), f.Category) {
			return false
		}
	}

	switch strings.ToLower(f.Status) {
	case "", "all":
	case "active":
		if !m.MemberIsActive {
			return false
		}
	case "inactive":
		if m.MemberIsActive {
			return false
		}
	}

	if s := strings.TrimSpace(f.Search); s != "" {
		low := strings.ToLower(s)
		alt := ""
		if m.MemberAlternateName != nil {
			alt = *m.MemberAlternateName
		}
		if !strings.Contains(strings.ToLower(m.MemberFullName), low) &&
			!strings.Contains(strings.ToLower(alt), low) &&
			!strings.Contains(strings.ToLower(m.MemberNo), low) &&
			!strings.Contains(strings.ToLower(m.MemberPhone), low) {
			return false
		}
	}

	return true
}

// ApplyMemberFilter keeps the members passing every predicate.
func ApplyMemberFilter(members []model.MemberModel, f MemberFilter, asOf time.Time) []model.MemberModel {
	out := make([]model.MemberModel, 0, len(members))
	for _, m := range members {
		if f.Match(m, asOf) {
			out = append(out, m)
		}
	}
	return out
}
