package repository

import "github.com/caderneta/mercearia-api/internal/domain/entity"

// MerceariaRepository define o porto de persistência dos tenants.
type MerceariaRepository interface {
	Create(m *entity.Mercearia) error
	GetByID(id string) (*entity.Mercearia, error)
	Update(m *entity.Mercearia) error
	// UpdateStatus troca o status de assinatura; false se a mercearia não existir.
	UpdateStatus(id, status string) (bool, error)
	// ListAtivas devolve todas as mercearias não excluídas, mais recentes primeiro.
	ListAtivas() ([]*entity.Mercearia, error)
	ListExcluidas() ([]*entity.Mercearia, error)
}
