package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaturalKeyIndexDDL(t *testing.T) {
	creates := 0
	for _, stmt := range naturalKeyIndexDDL {
		if !strings.HasPrefix(stmt, "CREATE UNIQUE INDEX") {
			continue
		}
		creates++
		assert.Contains(t, stmt, "NULLS NOT DISTINCT",
			"region-less rows must still collide on the natural key")
	}
	assert.Equal(t, 2, creates, "one index per report table")
}
