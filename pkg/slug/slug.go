package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeMarks elimina marcas diacríticas tras descomponer en NFD ("é" -> "e").
var removeMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make deriva el código de una empresa a partir de su nombre: minúsculas,
// sin acentos y solo caracteres alfanuméricos ASCII, sin separadores.
// "Apple Computer" -> "applecomputer", "Café S.A." -> "cafesa".
func Make(name string) string {
	folded, _, err := transform.String(removeMarks, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
