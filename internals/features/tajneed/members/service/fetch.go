package service

import (
	"gorm.io/gorm"

	"ansarullah_backend/internals/features/tajneed/members/model"
)

// FetchPageSize is the per-request row cap worked around by the paging loop.
const FetchPageSize = 1000

// FetchAllMembers reads the whole members table in fixed-size pages and
// concatenates them; the loop ends when a page comes back short.
func FetchAllMembers(db *gorm.DB) ([]model.MemberModel, error) {
	return collectPages(FetchPageSize, func(limit, offset int) ([]model.MemberModel, error) {
		var page []model.MemberModel
		err := db.Order("created_at asc").Limit(limit).Offset(offset).Find(&page).Error
		return page, err
	})
}

func collectPages(pageSize int, fetchPage func(limit, offset int) ([]model.MemberModel, error)) ([]model.MemberModel, error) {
	var all []model.MemberModel
	for offset := 0; ; offset += pageSize {
		page, err := fetchPage(pageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < pageSize {
			return all, nil
		}
	}
}
