package service

import (
	"sort"

	"ansarullah_backend/internals/features/tajneed/members/model"
)

// SortMembersByNo orders members by registration number in natural order,
// the same order a printed register uses.
func SortMembersByNo(members []model.MemberModel, descending bool) {
	sort.SliceStable(members, func(i, j int) bool {
		if descending {
			i, j = j, i
		}
		return serialLess(members[i].MemberNo, members[j].MemberNo)
	})
}
