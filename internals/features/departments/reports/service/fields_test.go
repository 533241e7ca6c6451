package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriStateToBool(t *testing.T) {
	yes := TriStateToBool("Yes")
	if assert.NotNil(t, yes) {
		assert.True(t, *yes)
	}
	no := TriStateToBool(" no ")
	if assert.NotNil(t, no) {
		assert.False(t, *no)
	}
	native := TriStateToBool(true)
	if assert.NotNil(t, native) {
		assert.True(t, *native)
	}

	assert.Nil(t, TriStateToBool("maybe"))
	assert.Nil(t, TriStateToBool(nil))
	assert.Nil(t, TriStateToBool(3))
}

func TestNormalizedColumnsCoercion(t *testing.T) {
	cols := NormalizedColumns(map[string]interface{}{
		"classes_held":         float64(3), // JSON numbers decode as float64
		"home_visits":          12,
		"held_general_meeting": "Yes",
		"remarks":              "ok",
		"unknown_field":        "dropped",
		"meetings_held":        "not a number",
	})

	assert.Equal(t, 3, cols["classes_held"])
	assert.Equal(t, 12, cols["home_visits"])
	assert.Equal(t, true, cols["held_general_meeting"])
	assert.Equal(t, "ok", cols["remarks"])
	assert.NotContains(t, cols, "unknown_field")
	assert.NotContains(t, cols, "meetings_held", "uncoercible values are dropped, not zeroed")
}

func TestBlobFieldsKeepsEverything(t *testing.T) {
	blob := BlobFields(map[string]interface{}{
		"held_general_meeting":  true,
		"report_sent_to_center": false,
		"custom":                "kept as-is",
	})

	assert.Equal(t, "Yes", blob["held_general_meeting"])
	assert.Equal(t, "No", blob["report_sent_to_center"])
	assert.Equal(t, "kept as-is", blob["custom"])
}
