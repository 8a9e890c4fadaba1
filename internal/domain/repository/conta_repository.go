package repository

import (
	"time"

	"github.com/caderneta/mercearia-api/internal/domain/entity"
)

// ContaPagarRepository define o porto de persistência de contas a pagar.
// Contas pagas são imutáveis: update e delete só alcançam pendentes.
type ContaPagarRepository interface {
	Create(c *entity.ContaPagar) error
	List(merceariaID string) ([]*entity.ContaPagar, error)
	GetByID(merceariaID, id string) (*entity.ContaPagar, error)
	// UpdatePendente atualiza descrição/valor/vencimento; false se não existir ou já paga.
	UpdatePendente(c *entity.ContaPagar) (bool, error)
	// DeletePendente remove a conta; false se não existir ou já paga.
	DeletePendente(merceariaID, id string) (bool, error)
	// MarcarPaga grava status paga + data de pagamento; nil se não encontrada.
	MarcarPaga(merceariaID, id string, quando time.Time) (*entity.ContaPagar, error)
}
