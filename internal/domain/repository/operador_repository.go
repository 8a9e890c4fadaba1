package repository

import "github.com/caderneta/mercearia-api/internal/domain/entity"

// OperadorRepository define o porto de persistência das contas de operador.
type OperadorRepository interface {
	Create(o *entity.Operador) error
	GetByID(id string) (*entity.Operador, error)
	GetByEmail(email string) (*entity.Operador, error)
	ListByMercearia(merceariaID string) ([]*entity.Operador, error)
	Update(o *entity.Operador) error
	// UpdateStatus ativa/desativa o acesso; false se não existir na mercearia.
	UpdateStatus(merceariaID, id, status string) (bool, error)
	Delete(merceariaID, id string) (bool, error)
}
