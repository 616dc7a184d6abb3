package domain

const (
	// MinQty e MaxQty delimitam a quantidade de uma linha enquanto ela existe.
	MinQty = 1
	MaxQty = 99

	// identitySeparator separa sku e rótulo da variante na chave de identidade.
	identitySeparator = "::"
)

// CartLine é uma linha do carrinho. A identidade é o par (Sku, VariantLabel);
// Name e Photo são cache de exibição e não são revalidados contra o catálogo.
type CartLine struct {
	Sku          string `json:"sku"`
	VariantLabel string `json:"variant_label"`
	Name         string `json:"name"`
	Photo        string `json:"photo"`
	Qty          int    `json:"qty"`
}

func NewCartLine(sku, variantLabel, name, photo string, qty int) CartLine {
	return CartLine{
		Sku:          sku,
		VariantLabel: variantLabel,
		Name:         name,
		Photo:        photo,
		Qty:          qty,
	}
}

// Key devolve a chave de identidade da linha. Rótulo ausente usa o sentinela
// DefaultVariantLabel, garantindo que sku sem variante colida consigo mesmo.
func (l CartLine) Key() string {
	return CartLineKey(l.Sku, l.VariantLabel)
}

// CartLineKey monta a chave de identidade a partir de um par (sku, rótulo).
func CartLineKey(sku, variantLabel string) string {
	if variantLabel == "" {
		variantLabel = DefaultVariantLabel
	}

	return sku + identitySeparator + variantLabel
}
