package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFuel(t *testing.T) {
	comp, err := parseFuel("CH4=90, C2H6=6,C3H8=4")
	require.NoError(t, err)
	assert.InDelta(t, 90, comp["CH4"], 1e-9)
	assert.InDelta(t, 6, comp["C2H6"], 1e-9)
	assert.InDelta(t, 4, comp["C3H8"], 1e-9)
}

func TestParseFuelErrors(t *testing.T) {
	_, err := parseFuel("")
	assert.Error(t, err)

	_, err = parseFuel("CH4")
	assert.Error(t, err)

	_, err = parseFuel("CH4=abc")
	assert.Error(t, err)
}
