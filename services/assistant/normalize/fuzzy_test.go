package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var cityNames = []string{"Dubai", "Riyadh", "Doha"}

func TestMatchTypo(t *testing.T) {
	idx, ok := Match("Dubia", cityNames, PlaceThreshold)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestMatchCaseInsensitive(t *testing.T) {
	idx, ok := Match("RIYADH", cityNames, PlaceThreshold)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestMatchRejectsUnknown(t *testing.T) {
	_, ok := Match("Paris", cityNames, PlaceThreshold)
	assert.False(t, ok)
}

func TestMatchEmptyInput(t *testing.T) {
	_, ok := Match("", cityNames, PlaceThreshold)
	assert.False(t, ok)
	_, ok = Match("   ", cityNames, PlaceThreshold)
	assert.False(t, ok)
}

func TestMatchTieGoesToFirst(t *testing.T) {
	idx, ok := Match("sedan", []string{"Sedan", "Sedan"}, PlaceThreshold)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestMatchWordOrderInsensitive(t *testing.T) {
	idx, ok := Match("wrap falafel", []string{"Chicken Shawarma Plate", "Falafel Wrap"}, MenuThreshold)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}
