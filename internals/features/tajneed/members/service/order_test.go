package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ansarullah_backend/internals/features/tajneed/members/model"
)

func memberNos(members []model.MemberModel) []string {
	nos := make([]string, len(members))
	for i, m := range members {
		nos[i] = m.MemberNo
	}
	return nos
}

func TestSortMembersByNo(t *testing.T) {
	members := []model.MemberModel{
		{MemberNo: "MA10"},
		{MemberNo: "MA1000"},
		{MemberNo: "MA2"},
		{MemberNo: "MA999"},
	}

	SortMembersByNo(members, false)
	assert.Equal(t, []string{"MA2", "MA10", "MA999", "MA1000"}, memberNos(members))

	SortMembersByNo(members, true)
	assert.Equal(t, []string{"MA1000", "MA999", "MA10", "MA2"}, memberNos(members))
}
