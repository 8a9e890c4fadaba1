package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/caderneta/mercearia-api/internal/domain"
)

// isUniqueViolation verifica se o erro é violação de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isSerializationFailure cobre conflito de serialização (40001) e deadlock (40P01).
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// mapTxError traduz falhas de concorrência e timeout para ErrTransacaoAbortada,
// preservando os erros de domínio que o callback já devolveu.
func mapTxError(err error) error {
	if err == nil {
		return nil
	}
	if isSerializationFailure(err) || errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrTransacaoAbortada
	}
	return err
}
