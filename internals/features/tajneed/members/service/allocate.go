package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"ansarullah_backend/internals/features/tajneed/members/model"
)

const maxAllocateAttempts = 5

// CreateWithSerial allocates the next registration number and inserts the
// member. The scan-then-insert runs inside a transaction against the UNIQUE
// constraint on member_no; a concurrent allocation that wins the race
// surfaces as a unique violation here, and we rescan and retry.
func CreateWithSerial(db *gorm.DB, m *model.MemberModel) error {
	for attempt := 0; attempt < maxAllocateAttempts; attempt++ {
		err := db.Transaction(func(tx *gorm.DB) error {
			var nos []string
			// Unscoped: soft-deleted members still hold their number.
			if err := tx.Model(&model.MemberModel{}).Unscoped().Pluck("member_no", &nos).Error; err != nil {
				return err
			}
			m.MemberNo = NextSerial(nos)
			return tx.Create(m).Error
		})
		if err == nil {
			return nil
		}
		if isUniqueViolation(err) {
			continue
		}
		return err
	}
	return fmt.Errorf("member number allocation lost the race %d times", maxAllocateAttempts)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == "23505"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == "23505"
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate") || strings.Contains(low, "unique")
}
