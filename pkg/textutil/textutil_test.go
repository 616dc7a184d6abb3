package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"nome simples", "Mel Silvestre", "mel-silvestre"},
		{"acentos removidos", "Café Torrado e Moído", "cafe-torrado-e-moido"},
		{"simbolos viram hifen unico", "Doce de Leite -- 500g!!", "doce-de-leite-500g"},
		{"espacos nas bordas", "  Queijo Canastra  ", "queijo-canastra"},
		{"somente simbolos", "@#$%", ""},
		{"entrada vazia", "", ""},
		{"cedilha", "Açúcar Mascavo", "acucar-mascavo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestNormalizeSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"minusculas e trim", "  Cafe-Torrado ", "cafe-torrado"},
		{"remove query", "cafe-torrado?ref=promo", "cafe-torrado"},
		{"remove fragment", "cafe-torrado#detalhes", "cafe-torrado"},
		{"query e fragment", "cafe-torrado?a=1#b", "cafe-torrado"},
		{"percent decoding", "caf%C3%A9-especial", "café-especial"},
		{"dupla codificacao", "caf%25C3%25A9-especial", "café-especial"},
		{"espaco codificado vira vazio", "%20", ""},
		{"espaco codificado duas vezes", "%2520", ""},
		{"decodificacao invalida usa fallback", "cafe-%zz", "cafe-%zz"},
		{"vazio", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSlug(tt.input))
		})
	}
}

func TestNormalizeSlugIdempotente(t *testing.T) {
	inputs := []string{
		"Cafe-Torrado?x=1",
		"caf%C3%A9-especial",
		"caf%25C3%25A9-especial",
		"%20",
		"%2520",
		"a%3Fb",
		"  MEL-SILVESTRE#topo ",
		"cafe-%zz",
		"",
	}

	for _, in := range inputs {
		once := NormalizeSlug(in)
		assert.Equal(t, once, NormalizeSlug(once), "entrada: %q", in)
	}
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "café torrado", NormalizeText("  Café Torrado "))
	assert.Equal(t, "", NormalizeText("   "))
}

func TestClamp(t *testing.T) {
	tests := []struct {
		n, min, max, expected int
	}{
		{5, 1, 99, 5},
		{0, 1, 99, 1},
		{-3, 1, 99, 1},
		{150, 1, 99, 99},
		{1, 1, 3, 1},
		{3, 1, 3, 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Clamp(tt.n, tt.min, tt.max))
	}
}
