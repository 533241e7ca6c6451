package service

import (
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// ReportKey is the natural composite key of a departmental report.
// tabligh_digital reports carry nil RegionID/MajlisID.
type ReportKey struct {
	RegionID *uuid.UUID
	MajlisID *uuid.UUID
	Month    int
	Year     int
	Section  string
}

// Store abstracts the two report representations for the synchronizer.
type Store interface {
	// UpsertNormalized writes the full typed row on the natural key.
	UpsertNormalized(key ReportKey, cols map[string]interface{}) error
	// UpsertNormalizedBase writes only the guaranteed-present key columns.
	UpsertNormalizedBase(key ReportKey) error
	// UpsertDetails mirrors the full field map into the blob table.
	UpsertDetails(key ReportKey, data map[string]interface{}) error
	// FetchNormalized returns the non-null typed column values; ok is false
	// when no row exists.
	FetchNormalized(key ReportKey) (map[string]interface{}, bool, error)
	// FetchDetails returns the blob map; ok is false when no row exists.
	FetchDetails(key ReportKey) (map[string]interface{}, bool, error)
}

// Synchronizer keeps a departmental report consistent across the normalized
// table and the JSONB details table, tolerating a partially migrated
// normalized schema.
type Synchronizer struct {
	store Store
}

func NewSynchronizer(store Store) *Synchronizer {
	return &Synchronizer{store: store}
}

// Write persists the submitted field map.
//
//  1. Try the full normalized write.
//  2. On a missing-column error, retry with base columns only.
//  3. Upsert the complete field set into the blob table either way; a blob
//     failure is logged and swallowed since the normalized write already
//     satisfied the caller. Both normalized writes failing is a hard error.
//
// The two writes are not one transaction: a crash in between leaves the
// representations inconsistent until the next successful write. Accepted.
func (s *Synchronizer) Write(key ReportKey, fields map[string]interface{}) error {
	if err := s.store.UpsertNormalized(key, NormalizedColumns(fields)); err != nil {
		if !IsMissingColumn(err) {
			return err
		}
		log.Printf("[WARN] normalized report write hit missing column, falling back to base columns: %v", err)
		if err := s.store.UpsertNormalizedBase(key); err != nil {
			return err
		}
	}

	if err := s.store.UpsertDetails(key, BlobFields(fields)); err != nil {
		log.Printf("[ERROR] report details mirror write failed (ignored): %v", err)
	}
	return nil
}

// Read returns the report fields in the blob convention (booleans as
// "Yes"/"No"). A normalized row with no typed values, or no normalized row
// at all, falls back to the details table.
func (s *Synchronizer) Read(key ReportKey) (map[string]interface{}, bool, error) {
	cols, ok, err := s.store.FetchNormalized(key)
	if err != nil {
		return nil, false, err
	}
	if ok && len(cols) > 0 {
		out := make(map[string]interface{}, len(cols))
		for name, v := range cols {
			if b, isBool := v.(bool); isBool {
				out[name] = BoolToTriState(b)
				continue
			}
			out[name] = v
		}
		return out, true, nil
	}

	details, detOK, err := s.store.FetchDetails(key)
	if err != nil {
		return nil, false, err
	}
	if detOK {
		return details, true, nil
	}
	// base-only row without a mirrored blob: the report exists but has no
	// recoverable fields
	if ok {
		return map[string]interface{}{}, true, nil
	}
	return nil, false, nil
}

// Missing-column message fragments seen across drivers and PostgREST-style
// schema caches.
var missingColumnFragments = []string{
	"does not exist",
	"missing column",
	"could not find column",
	"schema cache",
}

// IsMissingColumn detects an undefined-column failure, preferring the typed
// driver code over message matching.
func IsMissingColumn(err error) bool {
	if err == nil {
		return false
	}
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == "42703"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == "42703"
	}
	low := strings.ToLower(err.Error())
	for _, frag := range missingColumnFragments {
		if strings.Contains(low, frag) {
			return true
		}
	}
	return false
}
