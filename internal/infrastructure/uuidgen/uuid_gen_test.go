package uuidgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_NewUUID(t *testing.T) {
	g := NewGenerator()
	a, b := g.NewUUID(), g.NewUUID()

	assert.NotEqual(t, a, b)
	assert.True(t, IsValid(a))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"))
	assert.False(t, IsValid("012345678901234567890123"))
	assert.False(t, IsValid("9b1deb4d3b7d4bad9bdd2b0d7b3dcb6d"))
	assert.False(t, IsValid("{9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d}"))
	assert.False(t, IsValid(""))
}
