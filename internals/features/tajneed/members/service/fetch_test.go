package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ansarullah_backend/internals/features/tajneed/members/model"
)

func TestCollectPagesStopsOnShortPage(t *testing.T) {
	const total = 2500
	pageSize := 1000

	var calls []int
	fetch := func(limit, offset int) ([]model.MemberModel, error) {
		calls = append(calls, offset)
		var page []model.MemberModel
		for i := offset; i < offset+limit && i < total; i++ {
			page = append(page, model.MemberModel{MemberNo: fmt.Sprintf("MA%d", i+1)})
		}
		return page, nil
	}

	all, err := collectPages(pageSize, fetch)
	require.NoError(t, err)
	assert.Len(t, all, total)
	assert.Equal(t, []int{0, 1000, 2000}, calls, "short final page ends the loop")
}

func TestCollectPagesExactMultipleFetchesEmptyTail(t *testing.T) {
	const total = 2000
	fetch := func(limit, offset int) ([]model.MemberModel, error) {
		var page []model.MemberModel
		for i := offset; i < offset+limit && i < total; i++ {
			page = append(page, model.MemberModel{})
		}
		return page, nil
	}

	all, err := collectPages(1000, fetch)
	require.NoError(t, err)
	assert.Len(t, all, total)
}

func TestCollectPagesPropagatesError(t *testing.T) {
	fetch := func(limit, offset int) ([]model.MemberModel, error) {
		if offset > 0 {
			return nil, fmt.Errorf("boom")
		}
		page := make([]model.MemberModel, limit)
		return page, nil
	}

	_, err := collectPages(1000, fetch)
	assert.Error(t, err)
}
