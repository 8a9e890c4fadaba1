package repository

import "github.com/caderneta/mercearia-api/internal/domain/entity"

// CategoriaRepository define o porto de persistência de categorias.
type CategoriaRepository interface {
	Create(c *entity.Categoria) error
	List(merceariaID string) ([]*entity.Categoria, error)
	Update(c *entity.Categoria) (bool, error)
	Delete(merceariaID, id string) (bool, error)
}
