// Package textutil reúne utilitários puros de normalização de texto
// usados pelo catálogo (slugs, busca) e pelo carrinho (limites de quantidade).
package textutil

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// stripDiacritics remove marcas de acentuação (NFD -> remove Mn -> NFC).
	stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	// nonAlphanumeric casa qualquer sequência fora de [a-z0-9].
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify converte um nome legível em slug seguro para URL.
// Ex.: "Café Torrado & Moído" -> "cafe-torrado-moido".
// Entrada vazia produz saída vazia; o fallback fica a cargo do chamador.
func Slugify(name string) string {
	s, _, err := transform.String(stripDiacritics, strings.TrimSpace(name))
	if err != nil {
		s = strings.TrimSpace(name)
	}

	s = strings.ToLower(s)
	s = nonAlphanumeric.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}

// NormalizeSlug normaliza um slug vindo de rota ou de armazenamento para
// comparação por igualdade. Remove sufixos ?query e #fragment, decodifica
// percent-encoding, aplica trim e minúsculas. Se a decodificação falhar,
// devolve o valor sem decodificar (trim + minúsculas) em vez de propagar erro.
// A mesma função deve ser aplicada aos dois lados da comparação.
//
// A normalização é aplicada até o ponto fixo: entradas codificadas mais de
// uma vez ("%2520", slugs reencodados por proxies) decodificam por completo,
// e NormalizeSlug(NormalizeSlug(x)) == NormalizeSlug(x) para qualquer x.
func NormalizeSlug(input string) string {
	s := normalizeSlugPass(input)
	for {
		next := normalizeSlugPass(s)
		if next == s {
			return s
		}
		s = next
	}
}

func normalizeSlugPass(input string) string {
	s := input
	if i := strings.IndexByte(s, '?'); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}

	decoded, err := url.PathUnescape(s)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}

	return strings.ToLower(strings.TrimSpace(decoded))
}

// NormalizeText prepara um texto para busca por substring: trim + minúsculas.
// Acentos são preservados de propósito; apenas caixa e espaços são normalizados.
func NormalizeText(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// Clamp restringe n ao intervalo [min, max].
func Clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}

	return n
}
