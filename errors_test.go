package sonargeo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessagesCarryContext(t *testing.T) {
	shape := &ShapeMismatch{Field: "range", Expected: []int{3}, Got: []int{2}}
	assert.Contains(t, shape.Error(), "range")
	assert.Contains(t, shape.Error(), "3")
	assert.Contains(t, shape.Error(), "2")

	length := &LengthMismatch{A: 4, B: 5}
	assert.Contains(t, length.Error(), "4")
	assert.Contains(t, length.Error(), "5")

	empty := &EmptyInput{Op: "get_minmax"}
	assert.Contains(t, empty.Error(), "get_minmax")

	invalid := &InvalidArgument{Name: "percentile", Value: 150}
	assert.Contains(t, invalid.Error(), "percentile")
	assert.Contains(t, invalid.Error(), "150")

	unsupported := &Unsupported{Op: "default_backtrace"}
	assert.Contains(t, unsupported.Error(), "default_backtrace")
}
