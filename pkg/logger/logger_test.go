package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInitSetsLevelPerEnvironment(t *testing.T) {
	Init("production")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	Init("development")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestInitTagsEveryLine(t *testing.T) {
	Init("production")

	var buf bytes.Buffer
	log.Logger = log.Logger.Output(&buf)

	Info("request served", map[string]interface{}{"status": 200})

	out := buf.String()
	assert.Contains(t, out, `"service":"rentreview-api"`)
	assert.Contains(t, out, `"env":"production"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, "request served")
}
