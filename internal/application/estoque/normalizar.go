package estoque

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// folder decompõe (NFD), remove marcas diacríticas e recompõe (NFC).
var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizarNome devolve o nome sem acentos e em minúsculas, para a busca
// tolerante do PDV ("acucar" encontra "Açúcar"). O valor é gravado junto do
// produto e o termo de busca passa pela mesma normalização.
func NormalizarNome(s string) string {
	out, _, err := transform.String(folder, s)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return strings.ToLower(strings.TrimSpace(out))
}
