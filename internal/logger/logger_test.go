package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	log := New("info")
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())

	log = New("debug")
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}

func TestNew_UnknownLevel(t *testing.T) {
	log := New("chatty")
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Info().Str("stage", "load").Msg("tables ready")

	out := buf.String()
	assert.Contains(t, out, "tables ready")
	assert.Contains(t, out, "load")
}

func TestContextRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	ctx := WithContext(context.Background(), log)
	got := FromContext(ctx)
	got.Info().Msg("from context")

	assert.Contains(t, buf.String(), "from context")
}

func TestFromContext_Default(t *testing.T) {
	log := FromContext(context.Background())
	assert.NotEqual(t, zerolog.Disabled, log.GetLevel())
}
