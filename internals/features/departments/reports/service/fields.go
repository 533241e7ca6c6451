package service

import "strings"

// Typed columns mirrored from the details blob into the normalized table.
// Field names and column names are kept identical on purpose.
var normalizedIntFields = []string{
	"meetings_held",
	"total_attendance",
	"home_visits",
	"literature_distributed",
	"new_converts",
	"classes_held",
	"books_completed",
	"projects_done",
	"blood_donations",
}

var normalizedBoolFields = []string{
	"held_general_meeting",
	"report_sent_to_center",
}

var normalizedTextFields = []string{
	"remarks",
}

// BoolToTriState maps a native boolean to the blob convention.
func BoolToTriState(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// TriStateToBool maps "Yes"/"No" (or a native bool) back; nil for absent or
// anything else.
func TriStateToBool(v interface{}) *bool {
	switch t := v.(type) {
	case bool:
		b := t
		return &b
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "yes":
			b := true
			return &b
		case "no":
			b := false
			return &b
		}
	}
	return nil
}

// NormalizedColumns picks the known typed fields out of a submitted field
// map and coerces them to column values: ints for counters, native bools for
// flags (accepting the Yes/No convention on input too).
func NormalizedColumns(fields map[string]interface{}) map[string]interface{} {
	cols := make(map[string]interface{})
	for _, name := range normalizedIntFields {
		if v, ok := fields[name]; ok {
			if n, ok := toInt(v); ok {
				cols[name] = n
			}
		}
	}
	for _, name := range normalizedBoolFields {
		if v, ok := fields[name]; ok {
			if b := TriStateToBool(v); b != nil {
				cols[name] = *b
			}
		}
	}
	for _, name := range normalizedTextFields {
		if v, ok := fields[name]; ok {
			if s, ok := v.(string); ok {
				cols[name] = s
			}
		}
	}
	return cols
}

// BlobFields carries the complete submitted map, with booleans translated to
// "Yes"/"No" strings.
func BlobFields(fields map[string]interface{}) map[string]interface{} {
	blob := make(map[string]interface{}, len(fields))
	for name, v := range fields {
		if b, ok := v.(bool); ok {
			blob[name] = BoolToTriState(b)
			continue
		}
		blob[name] = v
	}
	return blob
}

func toInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	}
	return 0, false
}
