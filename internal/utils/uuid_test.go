package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

// UUIDv7 упорядочены по времени: идентификаторы, выданные подряд,
// лексикографически возрастают.
func TestUUIDGenerator_TimeOrdered(t *testing.T) {
	g := NewUUIDGenerator()

	previous := g.Generate()
	for i := 0; i < 100; i++ {
		next := g.Generate()
		assert.Less(t, previous, next)
		previous = next
	}
}
