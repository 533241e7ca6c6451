package service

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, isUniqueViolation(errors.New(`duplicate key value violates unique constraint "members_member_no_key"`)))

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "42703"}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}
