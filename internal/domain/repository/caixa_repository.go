package repository

import (
	"time"

	"github.com/caderneta/mercearia-api/internal/domain/entity"
)

// CaixaRepository persiste as transações do caixa da mercearia.
type CaixaRepository interface {
	Create(t *entity.TransacaoCaixa) error
	// EntradasDesde devolve as entradas a partir do instante dado (resumo do dia).
	EntradasDesde(merceariaID string, desde time.Time) ([]*entity.TransacaoCaixa, error)
}
