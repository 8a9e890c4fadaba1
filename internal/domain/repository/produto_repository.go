package repository

import (
	"github.com/shopspring/decimal"

	"github.com/caderneta/mercearia-api/internal/domain/entity"
)

// ProdutoRepository define o porto de persistência do catálogo.
// Todas as consultas são escopadas por mercearia. GetForUpdate bloqueia a
// linha (SELECT FOR UPDATE) e é obrigatório antes de mexer em estoque.
type ProdutoRepository interface {
	Create(p *entity.Produto) error
	GetByID(merceariaID, id string) (*entity.Produto, error)
	GetForUpdate(merceariaID, id string) (*entity.Produto, error)
	UpdateEstoque(id string, novoEstoque decimal.Decimal) error
	Update(p *entity.Produto) error
	// Delete remove o produto; devolve false se não existir na mercearia.
	Delete(merceariaID, id string) (bool, error)
	List(merceariaID string) ([]*entity.Produto, error)
	ListEstoqueBaixo(merceariaID string) ([]*entity.Produto, error)
	// BuscarPDV busca por código de barras exato ou prefixo de nome.
	BuscarPDV(merceariaID, termo string, limit int) ([]*entity.Produto, error)
	// BuscarNormalizado compara contra nome_normalizado (termo já sem acentos).
	BuscarNormalizado(merceariaID, termoNormalizado string, limit int) ([]*entity.Produto, error)
}
