package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_NivelPadraoPorAmbiente(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, New(Config{Env: "development"}).Zerolog().GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New(Config{Env: "production"}).Zerolog().GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New(Config{Env: "staging"}).Zerolog().GetLevel())
}

func TestNew_NivelExplicitoVence(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, New(Config{Env: "production", Level: "warn"}).Zerolog().GetLevel())
	assert.Equal(t, zerolog.TraceLevel, New(Config{Env: "production", Level: "trace"}).Zerolog().GetLevel())
}

func TestParseLevel_ToleranteACaixaEEspacos(t *testing.T) {
	assert.Equal(t, zerolog.ErrorLevel, parseLevel(" ERROR ", false))
	assert.Equal(t, zerolog.DebugLevel, parseLevel("Debug", true))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("nivel-inventado", false), "valor desconhecido cai no padrão")
}
