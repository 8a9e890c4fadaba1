package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caderneta/mercearia-api/internal/domain"
)

func TestMapTxError_ConflitosViramTransacaoAbortada(t *testing.T) {
	casos := []struct {
		nome string
		err  error
	}{
		{"conflito de serialização", &pgconn.PgError{Code: "40001"}},
		{"deadlock", &pgconn.PgError{Code: "40P01"}},
		{"conflito embrulhado", fmt.Errorf("commit: %w", &pgconn.PgError{Code: "40001"})},
		{"timeout de contexto", fmt.Errorf("venda: %w", context.DeadlineExceeded)},
	}
	for _, c := range casos {
		assert.ErrorIs(t, mapTxError(c.err), domain.ErrTransacaoAbortada, c.nome)
	}
}

func TestMapTxError_PreservaErrosDeDominio(t *testing.T) {
	casos := []error{
		domain.ErrEstoqueInsuficiente,
		domain.ErrLimiteCreditoExcedido,
		domain.ErrPagamentoExcedeSaldo,
		domain.ErrNaoEncontrado,
	}
	for _, err := range casos {
		mapeado := mapTxError(err)
		assert.ErrorIs(t, mapeado, err, "erro de domínio do callback atravessa intacto")
		assert.NotErrorIs(t, mapeado, domain.ErrTransacaoAbortada)
	}
}

func TestMapTxError_OutrosErrosPassamDireto(t *testing.T) {
	err := errors.New("conexão recusada")
	assert.Equal(t, err, mapTxError(err))
	require.NoError(t, mapTxError(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("qualquer outro erro")))
}

func TestIsSerializationFailure(t *testing.T) {
	assert.True(t, isSerializationFailure(&pgconn.PgError{Code: "40001"}))
	assert.True(t, isSerializationFailure(&pgconn.PgError{Code: "40P01"}))
	assert.False(t, isSerializationFailure(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isSerializationFailure(context.DeadlineExceeded))
}
