package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/emporiodaserra/storefront-backend/internal/domain"
	"github.com/emporiodaserra/storefront-backend/pkg/e"
	"github.com/emporiodaserra/storefront-backend/pkg/logger"
	"github.com/emporiodaserra/storefront-backend/pkg/textutil"
	"github.com/shopspring/decimal"
)

// CatalogUseCase normaliza os registros brutos do catálogo e responde
// consultas filtradas e paginadas sobre a lista normalizada.
type CatalogUseCase struct {
	catalogRepo CatalogRepository
	cacheRepo   CatalogCache
	assets      AssetsInfra
	logger      logger.Logger
	pageSize    int
}

func NewCatalogUC(
	catalogRepo CatalogRepository,
	cacheRepo CatalogCache,
	assets AssetsInfra,
	logger logger.Logger,
	pageSize int,
) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo: catalogRepo,
		cacheRepo:   cacheRepo,
		assets:      assets,
		logger:      logger,
		pageSize:    pageSize,
	}
}

// GetCatalogPage devolve a página corrente do catálogo para o estado de
// filtro informado, com as categorias derivadas da lista atual.
func (c *CatalogUseCase) GetCatalogPage(ctx context.Context, state *FilterState) (*CatalogPageRes, error) {
	const op = "CatalogUseCase.GetCatalogPage"

	products, err := c.loadProducts(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return queryProducts(products, state, c.pageSize), nil
}

// GetProductBySlug localiza um produto pelo slug normalizado. Os dois lados
// da comparação passam por textutil.NormalizeSlug, então a busca é
// insensível a caixa e a percent-encoding.
func (c *CatalogUseCase) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProductBySlug"

	products, err := c.loadProducts(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	wanted := textutil.NormalizeSlug(slug)
	if wanted == "" {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	for i := range products {
		if textutil.NormalizeSlug(products[i].Slug) == wanted {
			return &products[i], nil
		}
	}

	return nil, e.Wrap(op, e.ErrProductNotFound)
}

// loadProducts devolve a lista normalizada, preferindo o cache. Uma falha da
// origem de dados é propagada como e.ErrCatalogUnavailable; falhas de cache
// são apenas logadas.
func (c *CatalogUseCase) loadProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "CatalogUseCase.loadProducts"

	if cached, ok := c.cacheRepo.GetProducts(ctx); ok {
		return cached, nil
	}

	rawProducts, rawVariants, err := c.catalogRepo.FetchCatalog(ctx)
	if err != nil {
		c.logger.Warnf("catalog fetch failed: %v", e.Wrap(op, err))
		return nil, e.ErrCatalogUnavailable
	}

	products := normalizeProducts(rawProducts, rawVariants, c.assets)

	// Aquecimento do cache em segundo plano, fora do caminho da resposta
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := c.cacheRepo.SetProducts(bgCtx, products); err != nil {
			c.logger.Warnf("failed to cache catalog in background: %v", e.Wrap(op, err))
		}
	}()

	return products, nil
}

// normalizeProducts transforma registros brutos no view model do catálogo,
// aplicando os fallbacks: slug derivado do nome (ou sku), imagem placeholder,
// categoria aparada e variante sintética "Padrão" quando o grupo é vazio.
// Registros malformados degradam para campos vazios; nunca abortam o lote.
// A ordem de entrada é preservada.
func normalizeProducts(rawProducts []domain.RawProduct, rawVariants []domain.RawVariant, assets AssetsInfra) []domain.Product {
	variantsBySku := indexVariants(rawVariants)

	products := make([]domain.Product, 0, len(rawProducts))
	for _, raw := range rawProducts {
		name := deref(raw.Name)

		slug := textutil.Slugify(name)
		if slug == "" {
			slug = raw.Sku
		}

		images := []string{assets.PlaceholderURL()}
		if photo := strings.TrimSpace(deref(raw.PhotoURL)); photo != "" {
			images = []string{assets.ResolveURL(photo)}
		}

		var priceCents int64
		var priceLabel string
		if raw.PriceCents != nil {
			priceCents = *raw.PriceCents
			priceLabel = formatPriceLabel(priceCents)
		}

		products = append(products, domain.Product{
			ID:          raw.Sku,
			Slug:        slug,
			Name:        name,
			Description: deref(raw.Description),
			Images:      images,
			Category:    strings.TrimSpace(deref(raw.Category)),
			PriceCents:  priceCents,
			PriceLabel:  priceLabel,
			Variants:    normalizeVariants(variantsBySku[raw.Sku]),
		})
	}

	return products
}

// indexVariants agrupa as variantes por sku do produto, mantendo a ordem
// crescente de sort_order dentro de cada grupo.
func indexVariants(rawVariants []domain.RawVariant) map[string][]domain.RawVariant {
	grouped := make(map[string][]domain.RawVariant, len(rawVariants))
	for _, v := range rawVariants {
		grouped[v.ProductSku] = append(grouped[v.ProductSku], v)
	}

	for sku := range grouped {
		group := grouped[sku]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].SortOrder < group[j].SortOrder
		})
	}

	return grouped
}

func normalizeVariants(group []domain.RawVariant) []domain.Variant {
	if len(group) == 0 {
		return []domain.Variant{domain.NewDefaultVariant()}
	}

	variants := make([]domain.Variant, 0, len(group))
	for _, v := range group {
		status := v.Status
		if status == "" {
			status = domain.VariantAvailable
		}
		variants = append(variants, domain.NewVariant(v.ID, v.Label, status))
	}

	return variants
}

// formatPriceLabel formata centavos como rótulo BRL, ex.: 1290 -> "R$ 12,90".
func formatPriceLabel(cents int64) string {
	value := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
	return "R$ " + strings.ReplaceAll(value.StringFixed(2), ".", ",")
}

// queryProducts aplica filtro, derivação de categorias e paginação.
// Os dois eixos de filtro combinam por E; a busca textual é por substring
// sobre nome e descrição normalizados (caixa e espaços, acentos preservados).
func queryProducts(products []domain.Product, state *FilterState, pageSize int) *CatalogPageRes {
	categories := deriveCategories(products)

	text := textutil.NormalizeText(state.Query)
	category := state.Category
	if category == "" {
		category = AllCategories
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !matchesText(p, text) {
			continue
		}
		if category != AllCategories && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}

	totalPages := (len(filtered) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	safePage := textutil.Clamp(state.Page, 1, totalPages)

	start := (safePage - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return NewCatalogPageRes(filtered[start:end], safePage, totalPages, categories)
}

func matchesText(p domain.Product, normalizedText string) bool {
	if normalizedText == "" {
		return true
	}

	return strings.Contains(textutil.NormalizeText(p.Name), normalizedText) ||
		strings.Contains(textutil.NormalizeText(p.Description), normalizedText)
}

// deriveCategories devolve ["TODAS"] + categorias não vazias, deduplicadas,
// na ordem da primeira aparição na lista corrente.
func deriveCategories(products []domain.Product) []string {
	categories := []string{AllCategories}
	seen := make(map[string]struct{}, len(products))

	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}

	return categories
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
