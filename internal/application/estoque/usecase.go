package estoque

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/caderneta/mercearia-api/internal/application/dto"
	"github.com/caderneta/mercearia-api/internal/domain"
	"github.com/caderneta/mercearia-api/internal/domain/entity"
	"github.com/caderneta/mercearia-api/internal/domain/repository"
)

// ProdutoUseCase casos de uso do catálogo: CRUD, buscas do PDV e estoque baixo.
type ProdutoUseCase struct {
	produtoRepo   repository.ProdutoRepository
	categoriaRepo repository.CategoriaRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(produtoRepo repository.ProdutoRepository, categoriaRepo repository.CategoriaRepository) *ProdutoUseCase {
	return &ProdutoUseCase{produtoRepo: produtoRepo, categoriaRepo: categoriaRepo}
}

// Criar cadastra um produto. Nome e preço de venda positivo são obrigatórios.
func (uc *ProdutoUseCase) Criar(merceariaID string, in dto.ProdutoRequest) (*dto.ProdutoResponse, error) {
	if merceariaID == "" || in.Nome == "" || !in.PrecoVenda.GreaterThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}
	if in.EstoqueAtual.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	p := &entity.Produto{
		ID:              uuid.New().String(),
		MerceariaID:     merceariaID,
		Nome:            in.Nome,
		NomeNormalizado: NormalizarNome(in.Nome),
		CodigoBarras:    in.CodigoBarras,
		EstoqueAtual:    in.EstoqueAtual,
		EstoqueMinimo:   defaultEstoqueMinimo(in.EstoqueMinimo),
		PrecoCusto:      in.PrecoCusto,
		PrecoVenda:      in.PrecoVenda,
		CategoriaID:     in.CategoriaID,
		UnidadeMedida:   defaultUnidade(in.UnidadeMedida),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.produtoRepo.Create(p); err != nil {
		return nil, err
	}
	return toProdutoResponse(p, ""), nil
}

// Atualizar edita o cadastro de um produto da mercearia. A edição também
// aceita correção de estoque do retaguarda: como o Update de cadastro nunca
// escreve estoque_atual, a correção é gravada em separado como valor absoluto.
func (uc *ProdutoUseCase) Atualizar(merceariaID, id string, in dto.ProdutoRequest) (*dto.ProdutoResponse, error) {
	if in.Nome == "" || !in.PrecoVenda.GreaterThan(decimal.Zero) || in.EstoqueAtual.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	p, err := uc.produtoRepo.GetByID(merceariaID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNaoEncontrado
	}
	estoqueAnterior := p.EstoqueAtual
	p.Nome = in.Nome
	p.NomeNormalizado = NormalizarNome(in.Nome)
	p.CodigoBarras = in.CodigoBarras
	p.EstoqueAtual = in.EstoqueAtual
	p.EstoqueMinimo = defaultEstoqueMinimo(in.EstoqueMinimo)
	p.PrecoCusto = in.PrecoCusto
	p.PrecoVenda = in.PrecoVenda
	p.CategoriaID = in.CategoriaID
	p.UnidadeMedida = defaultUnidade(in.UnidadeMedida)
	p.UpdatedAt = time.Now()
	if err := uc.produtoRepo.Update(p); err != nil {
		return nil, err
	}
	if !in.EstoqueAtual.Equal(estoqueAnterior) {
		if err := uc.produtoRepo.UpdateEstoque(p.ID, in.EstoqueAtual); err != nil {
			return nil, err
		}
	}
	return toProdutoResponse(p, ""), nil
}

// Deletar remove o produto se pertencer à mercearia. Os itens de vendas
// antigas guardam o nome desnormalizado, então o histórico sobrevive.
func (uc *ProdutoUseCase) Deletar(merceariaID, id string) error {
	ok, err := uc.produtoRepo.Delete(merceariaID, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Listar devolve o catálogo completo com o nome da categoria resolvido.
func (uc *ProdutoUseCase) Listar(merceariaID string) ([]dto.ProdutoResponse, error) {
	produtos, err := uc.produtoRepo.List(merceariaID)
	if err != nil {
		return nil, err
	}
	categorias, err := uc.categoriaRepo.List(merceariaID)
	if err != nil {
		return nil, err
	}
	nomePorID := make(map[string]string, len(categorias))
	for _, c := range categorias {
		nomePorID[c.ID] = c.Nome
	}
	out := make([]dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		nomeCat := ""
		if p.CategoriaID != nil {
			nomeCat = nomePorID[*p.CategoriaID]
		}
		out = append(out, *toProdutoResponse(p, nomeCat))
	}
	return out, nil
}

// ListarEstoqueBaixo devolve produtos que atingiram o estoque mínimo.
func (uc *ProdutoUseCase) ListarEstoqueBaixo(merceariaID string) ([]dto.ProdutoResponse, error) {
	produtos, err := uc.produtoRepo.ListEstoqueBaixo(merceariaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, *toProdutoResponse(p, ""))
	}
	return out, nil
}

// BuscarPDV busca por código de barras exato ou prefixo de nome (balcão).
func (uc *ProdutoUseCase) BuscarPDV(merceariaID, termo string) ([]dto.ProdutoResponse, error) {
	if termo == "" {
		return nil, domain.ErrEntradaInvalida
	}
	produtos, err := uc.produtoRepo.BuscarPDV(merceariaID, termo, 10)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, *toProdutoResponse(p, ""))
	}
	return out, nil
}

// BuscarGlobal busca tolerante a acentos em qualquer posição do nome.
func (uc *ProdutoUseCase) BuscarGlobal(merceariaID, termo string) ([]dto.ProdutoResponse, error) {
	if termo == "" {
		return nil, domain.ErrEntradaInvalida
	}
	produtos, err := uc.produtoRepo.BuscarNormalizado(merceariaID, NormalizarNome(termo), 20)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, *toProdutoResponse(p, ""))
	}
	return out, nil
}

func defaultEstoqueMinimo(v decimal.Decimal) decimal.Decimal {
	if v.IsZero() || v.IsNegative() {
		return decimal.NewFromInt(10)
	}
	return v
}

func defaultUnidade(u string) string {
	if u == "" {
		return "un"
	}
	return u
}

func toProdutoResponse(p *entity.Produto, nomeCategoria string) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:            p.ID,
		Nome:          p.Nome,
		CodigoBarras:  p.CodigoBarras,
		EstoqueAtual:  p.EstoqueAtual,
		EstoqueMinimo: p.EstoqueMinimo,
		PrecoCusto:    p.PrecoCusto,
		PrecoVenda:    p.PrecoVenda,
		CategoriaID:   p.CategoriaID,
		NomeCategoria: nomeCategoria,
		UnidadeMedida: p.UnidadeMedida,
		EstoqueBaixo:  p.EstoqueBaixo(),
	}
}
