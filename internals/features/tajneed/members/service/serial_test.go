package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericSuffix(t *testing.T) {
	n, ok := NumericSuffix("MA042")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	n, ok = NumericSuffix("MA-10-7")
	assert.True(t, ok)
	assert.Equal(t, 107, n, "all digit runs concatenate")

	_, ok = NumericSuffix("LEGACY")
	assert.False(t, ok)

	_, ok = NumericSuffix("")
	assert.False(t, ok)
}

func TestNextSerial(t *testing.T) {
	assert.Equal(t, "MA001", NextSerial(nil), "empty table starts at 1")
	assert.Equal(t, "MA001", NextSerial([]string{"LEGACY", "OLD"}), "ids without digits are ignored")
	assert.Equal(t, "MA004", NextSerial([]string{"MA001", "MA003", "MA002"}))
	assert.Equal(t, "MA1000", NextSerial([]string{"MA999"}), "width grows past the pad")
	assert.Equal(t, "MA100", NextSerial([]string{"MA001", "MA099"}))
}

func TestFormatSerial(t *testing.T) {
	assert.Equal(t, "MA007", FormatSerial(7))
	assert.Equal(t, "MA123", FormatSerial(123))
	assert.Equal(t, "MA1234", FormatSerial(1234))
}

func TestSortSerialsNaturalOrder(t *testing.T) {
	ids := []string{"MA10", "MA2", "MA1000", "MA1", "MA999"}
	SortSerials(ids)
	assert.Equal(t, []string{"MA1", "MA2", "MA10", "MA999", "MA1000"}, ids)
}

func TestSortSerialsNoDigitsFirst(t *testing.T) {
	ids := []string{"MA2", "MA", "MA1"}
	SortSerials(ids)
	assert.Equal(t, []string{"MA", "MA1", "MA2"}, ids)
}
