package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 Color", Pluralize("Color", 1))
	assert.Equal(t, "0 Colors", Pluralize("Color", 0))
	assert.Equal(t, "2 Colors", Pluralize("Color", 2))
	assert.Equal(t, "12 Colors", Pluralize("Color", 12))
}
