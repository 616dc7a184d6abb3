package domain

const (
	// DefaultVariantID identifica a variante sintética criada quando o
	// produto bruto não possui variantes.
	DefaultVariantID = "default"

	// DefaultVariantLabel é o rótulo exibido para a variante sintética e o
	// sentinela usado na chave de identidade do carrinho quando nenhum
	// rótulo foi informado.
	DefaultVariantLabel = "Padrão"

	// VariantAvailable e VariantOutOfStock são os estados possíveis de uma
	// variante na origem de dados.
	VariantAvailable  = "disponivel"
	VariantOutOfStock = "esgotado"
)

// RawProduct é o registro bruto de produto tal como vem da origem de dados.
// Campos opcionais chegam como ponteiros; o normalizador aplica os fallbacks.
type RawProduct struct {
	Sku         string
	Name        *string
	Description *string
	PhotoURL    *string
	Category    *string
	PriceCents  *int64
}

// RawVariant é o registro bruto de variante vinculado a um produto por SKU.
type RawVariant struct {
	ID         string
	ProductSku string
	Label      string
	Status     string
	SortOrder  int
}

// Variant é a variante já normalizada, sempre com id e rótulo preenchidos.
type Variant struct {
	ID     string
	Label  string
	Status string
}

// Product é o view model do catálogo com todos os fallbacks aplicados.
// Invariantes: slug não vazio e seguro para URL, ao menos uma imagem e ao
// menos uma variante.
type Product struct {
	ID          string
	Slug        string
	Name        string
	Description string
	Images      []string
	Category    string
	PriceCents  int64
	PriceLabel  string
	Variants    []Variant
}

func NewVariant(id, label, status string) Variant {
	return Variant{
		ID:     id,
		Label:  label,
		Status: status,
	}
}

// NewDefaultVariant cria a variante sintética "Padrão".
func NewDefaultVariant() Variant {
	return Variant{
		ID:     DefaultVariantID,
		Label:  DefaultVariantLabel,
		Status: VariantAvailable,
	}
}
