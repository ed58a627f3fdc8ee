package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_NumbersFromOne(t *testing.T) {
	options := Render(DefaultRecoveryOptions())

	assert.Len(t, options, 2)
	assert.Equal(t, 1, options[0].ID)
	assert.Equal(t, "Aircraft Substitution", options[0].Type)
	assert.Equal(t, 2, options[1].ID)
	assert.Equal(t, "Route Optimization", options[1].Type)
}

func TestDefaultRecoveryOptions_ReturnsCopy(t *testing.T) {
	opts := DefaultRecoveryOptions()
	opts[0].Cost = "$0"

	assert.Equal(t, "$125,000", DefaultRecoveryOptions()[0].Cost)
}

func TestRender_Empty(t *testing.T) {
	assert.Empty(t, Render(nil))
}
