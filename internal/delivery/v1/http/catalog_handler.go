package http

import (
	"net/http"

	"github.com/emporiodaserra/storefront-backend/internal/domain"
	"github.com/emporiodaserra/storefront-backend/internal/usecase"
	"github.com/emporiodaserra/storefront-backend/pkg/e"
	"github.com/emporiodaserra/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// VariantView é a representação de uma variante na resposta da API.
type VariantView struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Status string `json:"status"`
}

// ProductView é a representação de um produto na resposta da API.
type ProductView struct {
	ID          string        `json:"id"`
	Slug        string        `json:"slug"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Images      []string      `json:"images"`
	Category    string        `json:"category"`
	PriceCents  int64         `json:"price_cents"`
	PriceLabel  string        `json:"price_label"`
	Variants    []VariantView `json:"variants"`
}

// CatalogPageView é a página do catálogo com os metadados de paginação.
type CatalogPageView struct {
	Items      []ProductView `json:"items"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	Categories []string      `json:"categories"`
}

func toProductView(p *domain.Product) ProductView {
	variants := make([]VariantView, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, VariantView{
			ID:     v.ID,
			Label:  v.Label,
			Status: v.Status,
		})
	}

	return ProductView{
		ID:          p.ID,
		Slug:        p.Slug,
		Name:        p.Name,
		Description: p.Description,
		Images:      p.Images,
		Category:    p.Category,
		PriceCents:  p.PriceCents,
		PriceLabel:  p.PriceLabel,
		Variants:    variants,
	}
}

func toCatalogPageView(res *usecase.CatalogPageRes) *CatalogPageView {
	items := make([]ProductView, 0, len(res.Items))
	for i := range res.Items {
		items = append(items, toProductView(&res.Items[i]))
	}

	return &CatalogPageView{
		Items:      items,
		Page:       res.Page,
		TotalPages: res.TotalPages,
		Categories: res.Categories,
	}
}

// getCatalogPage
//
//	@Summary		Página do catálogo
//	@Description	Retorna a página do catálogo filtrada por texto e categoria
//	@Tags			catalog
//	@Produce		json
//	@Param			q			query		string	false	"Texto de busca"
//	@Param			category	query		string	false	"Categoria selecionada (vazio = todas)"
//	@Param			page		query		int		false	"Página solicitada (1-based)"
//	@Success		200			{object}	CatalogPageView
//	@Failure		400			{object}	ErrorResponse	"Página inválida"
//	@Failure		503			{object}	ErrorResponse	"Catálogo indisponível"
//	@Router			/catalog [get]
func (c *CatalogHandler) getCatalogPage(w http.ResponseWriter, r *http.Request) {
	page, err := parsePageParam(r)
	if err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	state := usecase.NewFilterState()
	state.SetQuery(r.URL.Query().Get("q"))
	state.SetCategory(r.URL.Query().Get("category"))
	state.SetPage(page)

	res, err := c.catalogUsecase.GetCatalogPage(r.Context(), state)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCatalogPageView(res))
}

// getProductBySlug
//
//	@Summary		Detalhe de produto
//	@Description	Retorna um produto do catálogo pelo slug
//	@Tags			catalog
//	@Produce		json
//	@Param			slug	path		string	true	"Slug do produto"
//	@Success		200		{object}	ProductView
//	@Failure		404		{object}	ErrorResponse	"Produto não encontrado"
//	@Failure		503		{object}	ErrorResponse	"Catálogo indisponível"
//	@Router			/catalog/products/{slug} [get]
func (c *CatalogHandler) getProductBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, err := c.catalogUsecase.GetProductBySlug(r.Context(), slug)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductView(product))
}
