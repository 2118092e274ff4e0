package spaces

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer разбирает символы на базовый знак и диакритику (NFD),
// убирает диакритические знаки и собирает строку обратно (NFC)
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldString нормализует строку для поиска: нижний регистр, без диакритики
func foldString(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// При ошибке трансформации деградируем до простого lower-case
		return strings.ToLower(strings.TrimSpace(s))
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
