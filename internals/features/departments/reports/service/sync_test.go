package service

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore keeps both representations in memory and can simulate a
// partially migrated normalized schema.
type fakeStore struct {
	normalized map[ReportKey]map[string]interface{}
	details    map[ReportKey]map[string]interface{}

	missingColumns bool
	failDetails    bool

	fullWrites int
	baseWrites int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		normalized: map[ReportKey]map[string]interface{}{},
		details:    map[ReportKey]map[string]interface{}{},
	}
}

func (s *fakeStore) UpsertNormalized(key ReportKey, cols map[string]interface{}) error {
	if s.missingColumns {
		return &pgconn.PgError{Code: "42703", Message: `column "blood_donations" of relation "department_reports" does not exist`}
	}
	s.fullWrites++
	s.normalized[key] = cols
	return nil
}

func (s *fakeStore) UpsertNormalizedBase(key ReportKey) error {
	s.baseWrites++
	if _, ok := s.normalized[key]; !ok {
		s.normalized[key] = map[string]interface{}{}
	}
	return nil
}

func (s *fakeStore) UpsertDetails(key ReportKey, data map[string]interface{}) error {
	if s.failDetails {
		return errors.New("details table unavailable")
	}
	s.details[key] = data
	return nil
}

func (s *fakeStore) FetchNormalized(key ReportKey) (map[string]interface{}, bool, error) {
	cols, ok := s.normalized[key]
	return cols, ok, nil
}

func (s *fakeStore) FetchDetails(key ReportKey) (map[string]interface{}, bool, error) {
	data, ok := s.details[key]
	return data, ok, nil
}

func testKey() ReportKey {
	return ReportKey{Month: 6, Year: 2025, Section: "talim"}
}

func submittedFields() map[string]interface{} {
	return map[string]interface{}{
		"classes_held":         4,
		"books_completed":      2,
		"held_general_meeting": true,
		"remarks":              "Good month",
		"custom_metric":        "12",
	}
}

func TestWriteFullSchemaRoundTrip(t *testing.T) {
	store := newFakeStore()
	sync := NewSynchronizer(store)

	require.NoError(t, sync.Write(testKey(), submittedFields()))
	assert.Equal(t, 1, store.fullWrites)
	assert.Equal(t, 0, store.baseWrites)

	got, ok, err := sync.Read(testKey())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 4, got["classes_held"])
	assert.Equal(t, "Yes", got["held_general_meeting"], "booleans read back as Yes/No")
	assert.Equal(t, "Good month", got["remarks"])
}

func TestWriteIdempotentOnSameKey(t *testing.T) {
	store := newFakeStore()
	sync := NewSynchronizer(store)

	require.NoError(t, sync.Write(testKey(), submittedFields()))
	fields := submittedFields()
	fields["classes_held"] = 7
	require.NoError(t, sync.Write(testKey(), fields))

	assert.Len(t, store.normalized, 1, "same natural key overwrites, never duplicates")
	got, ok, err := sync.Read(testKey())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 7, got["classes_held"])
}

func TestWriteFallsBackToBaseColumnsAndBlobStaysComplete(t *testing.T) {
	store := newFakeStore()
	store.missingColumns = true
	sync := NewSynchronizer(store)

	require.NoError(t, sync.Write(testKey(), submittedFields()))
	assert.Equal(t, 1, store.baseWrites)

	// Read falls through the empty normalized row into the blob, where the
	// whole submission survived, unknown fields included.
	got, ok, err := sync.Read(testKey())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Yes", got["held_general_meeting"])
	assert.Equal(t, "12", got["custom_metric"])
	assert.Equal(t, "Good month", got["remarks"])
}

func TestWriteSwallowsDetailsFailure(t *testing.T) {
	store := newFakeStore()
	store.failDetails = true
	sync := NewSynchronizer(store)

	assert.NoError(t, sync.Write(testKey(), submittedFields()),
		"blob mirror failure must not fail the caller")
}

func TestReadBaseOnlyRowWithoutBlob(t *testing.T) {
	store := newFakeStore()
	store.missingColumns = true
	store.failDetails = true
	sync := NewSynchronizer(store)

	require.NoError(t, sync.Write(testKey(), submittedFields()))
	store.failDetails = false

	got, ok, err := sync.Read(testKey())
	require.NoError(t, err)
	assert.True(t, ok, "the report exists")
	assert.Empty(t, got, "but no fields are recoverable")
}

func TestReadMissingReport(t *testing.T) {
	sync := NewSynchronizer(newFakeStore())

	got, ok, err := sync.Read(testKey())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestIsMissingColumn(t *testing.T) {
	assert.True(t, IsMissingColumn(&pgconn.PgError{Code: "42703"}))
	assert.False(t, IsMissingColumn(&pgconn.PgError{Code: "23505"}))

	assert.True(t, IsMissingColumn(errors.New(`column "x" does not exist`)))
	assert.True(t, IsMissingColumn(errors.New("Could not find column y in schema")))
	assert.True(t, IsMissingColumn(errors.New("stale schema cache entry")))

	assert.False(t, IsMissingColumn(errors.New("connection refused")))
	assert.False(t, IsMissingColumn(nil))
}
