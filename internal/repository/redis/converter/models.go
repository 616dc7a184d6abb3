package converter

type ProductRedisModel struct {
	ID          string              `json:"id"`
	Slug        string              `json:"slug"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Images      []string            `json:"images"`
	Category    string              `json:"category"`
	PriceCents  int64               `json:"price_cents"`
	PriceLabel  string              `json:"price_label"`
	Variants    []VariantRedisModel `json:"variants"`
}

type VariantRedisModel struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Status string `json:"status"`
}
