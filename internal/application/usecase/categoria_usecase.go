package usecase

import (
	"github.com/google/uuid"

	"github.com/caderneta/mercearia-api/internal/application/dto"
	"github.com/caderneta/mercearia-api/internal/domain"
	"github.com/caderneta/mercearia-api/internal/domain/entity"
	"github.com/caderneta/mercearia-api/internal/domain/repository"
)

// CategoriaUseCase CRUD de categorias do catálogo.
type CategoriaUseCase struct {
	categoriaRepo repository.CategoriaRepository
}

// NewCategoriaUseCase constrói o caso de uso.
func NewCategoriaUseCase(categoriaRepo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{categoriaRepo: categoriaRepo}
}

// Criar cadastra uma categoria; nome duplicado na mercearia devolve ErrDuplicado.
func (uc *CategoriaUseCase) Criar(merceariaID string, in dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	if merceariaID == "" || in.Nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	c := &entity.Categoria{
		ID:          uuid.New().String(),
		MerceariaID: merceariaID,
		Nome:        in.Nome,
	}
	if err := uc.categoriaRepo.Create(c); err != nil {
		return nil, err
	}
	return &dto.CategoriaResponse{ID: c.ID, Nome: c.Nome}, nil
}

// Listar devolve as categorias em ordem alfabética.
func (uc *CategoriaUseCase) Listar(merceariaID string) ([]dto.CategoriaResponse, error) {
	categorias, err := uc.categoriaRepo.List(merceariaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, dto.CategoriaResponse{ID: c.ID, Nome: c.Nome})
	}
	return out, nil
}

// Atualizar renomeia uma categoria.
func (uc *CategoriaUseCase) Atualizar(merceariaID, id string, in dto.CategoriaRequest) error {
	if in.Nome == "" {
		return domain.ErrEntradaInvalida
	}
	ok, err := uc.categoriaRepo.Update(&entity.Categoria{ID: id, MerceariaID: merceariaID, Nome: in.Nome})
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Deletar remove a categoria; produtos apontando para ela ficam sem categoria.
func (uc *CategoriaUseCase) Deletar(merceariaID, id string) error {
	ok, err := uc.categoriaRepo.Delete(merceariaID, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNaoEncontrado
	}
	return nil
}
