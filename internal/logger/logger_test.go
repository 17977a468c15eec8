package logger

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	// Должен молча проглотить запись без паники
	l.Info().Str("key", "value").Msg("discarded")
	l.Error().Msg("also discarded")
}

func TestGetChildLogger_Independent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_NoLoggerAttached(t *testing.T) {
	l := FromContext(context.Background())

	// zerolog возвращает глобальный логгер, nil быть не должно
	require.NotNil(t, l)
}

func TestWithContext_RoundTrip(t *testing.T) {
	base := Nop()
	ctx := base.WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)
	assert.Equal(t, zerolog.Nop().GetLevel(), got.GetLevel())
}
