// Package pdf gera o DRE (Demonstrativo de Resultado do Exercício) em PDF
// para o dono da mercearia imprimir ou enviar ao contador.
//
// Layout da página A4:
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: Nome da mercearia + período          │
//	│  ────────────────────────────────────────────│
//	│  RECEITAS: bruta + abertura por meio          │
//	│  CUSTOS: CMV e lucro bruto                    │
//	│  DESPESAS: contas pagas e lucro líquido       │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/caderneta/mercearia-api/internal/application/dto"
	"github.com/caderneta/mercearia-api/internal/application/relatorio"
)

var _ relatorio.DREPDFGenerator = (*MarotoDREGenerator)(nil)

var (
	corPrimaria = &props.Color{Red: 27, Green: 94, Blue: 32}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
	corVermelha = &props.Color{Red: 183, Green: 28, Blue: 28}
)

// MarotoDREGenerator gera o PDF do DRE usando Maroto v2.
type MarotoDREGenerator struct{}

// NewMarotoDREGenerator constrói o gerador.
func NewMarotoDREGenerator() *MarotoDREGenerator { return &MarotoDREGenerator{} }

// GerarDREPDF gera o PDF e devolve seus bytes.
func (g *MarotoDREGenerator) GerarDREPDF(nomeMercearia string, inicio, fim time.Time, dre *dto.DREResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("DRE - "+nomeMercearia, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(nomeMercearia, inicio, fim)...)
	m.AddRows(line.NewRow(2, props.Line{Color: corPrimaria, Thickness: 0.5}))

	m.AddRows(secaoRow("Receitas"))
	m.AddRows(
		linhaValor("Receita bruta", dre.ReceitaBruta, true),
		linhaValor("  Dinheiro", dre.ReceitaDinheiro, false),
		linhaValor("  Pix", dre.ReceitaPix, false),
		linhaValor("  Cartão", dre.ReceitaCartao, false),
		linhaValor("  Fiado", dre.ReceitaFiado, false),
	)

	m.AddRows(secaoRow("Custos"))
	m.AddRows(
		linhaValorNegativo("Custo das mercadorias vendidas (CMV)", dre.CMV),
		linhaValor("Lucro bruto", dre.LucroBruto, true),
	)

	m.AddRows(secaoRow("Despesas"))
	m.AddRows(linhaValorNegativo("Despesas pagas no período", dre.DespesasPagas))

	m.AddRows(line.NewRow(2, props.Line{Color: corPrimaria, Thickness: 0.5}))
	m.AddRows(row.New(10).Add(
		text.NewCol(8, "LUCRO LÍQUIDO", props.Text{Style: fontstyle.Bold, Size: 12}),
		text.NewCol(4, formatarValor(dre.LucroLiquido), props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right,
		}),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("gerar pdf dre: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRows(nomeMercearia string, inicio, fim time.Time) []core.Row {
	// fim é exclusivo; o período exibido termina no dia anterior.
	periodo := fmt.Sprintf("Período: %s a %s",
		inicio.Format("02/01/2006"), fim.AddDate(0, 0, -1).Format("02/01/2006"))
	return []core.Row{
		row.New(10).Add(
			text.NewCol(12, nomeMercearia, props.Text{Style: fontstyle.Bold, Size: 14, Color: corPrimaria}),
		),
		row.New(7).Add(
			text.NewCol(8, "Demonstrativo de Resultado do Exercício", props.Text{Size: 11}),
			text.NewCol(4, periodo, props.Text{Size: 9, Align: align.Right, Color: corCinza}),
		),
	}
}

func secaoRow(titulo string) core.Row {
	return row.New(9).Add(
		text.NewCol(12, titulo, props.Text{Style: fontstyle.Bold, Size: 11, Color: corPrimaria, Top: 3}),
	)
}

func linhaValor(rotulo string, valor decimal.Decimal, destaque bool) core.Row {
	estilo := fontstyle.Normal
	if destaque {
		estilo = fontstyle.Bold
	}
	return row.New(6).Add(
		text.NewCol(8, rotulo, props.Text{Style: estilo}),
		text.NewCol(4, formatarValor(valor), props.Text{Style: estilo, Align: align.Right}),
	)
}

func linhaValorNegativo(rotulo string, valor decimal.Decimal) core.Row {
	return row.New(6).Add(
		text.NewCol(8, rotulo),
		col.New(4).Add(
			text.New("(" + formatarValor(valor) + ")", props.Text{Align: align.Right, Color: corVermelha}),
		),
	)
}

// formatarValor exibe o valor no formato monetário brasileiro (R$ 1.234,56).
func formatarValor(v decimal.Decimal) string {
	s := v.StringFixed(2)
	negativo := false
	if len(s) > 0 && s[0] == '-' {
		negativo = true
		s = s[1:]
	}
	inteiro, centavos := s[:len(s)-3], s[len(s)-2:]
	var agrupado []byte
	for i, d := range []byte(inteiro) {
		if i > 0 && (len(inteiro)-i)%3 == 0 {
			agrupado = append(agrupado, '.')
		}
		agrupado = append(agrupado, d)
	}
	out := "R$ " + string(agrupado) + "," + centavos
	if negativo {
		out = "-" + out
	}
	return out
}
