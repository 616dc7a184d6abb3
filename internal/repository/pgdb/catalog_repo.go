package pgdb

import (
	"context"

	"github.com/emporiodaserra/storefront-backend/internal/domain"
	"github.com/emporiodaserra/storefront-backend/internal/repository/pgdb/converter"
	"github.com/emporiodaserra/storefront-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CatalogRepo lê o catálogo bruto do PostgreSQL. A normalização acontece
// no usecase; aqui só sai o que está nas tabelas.
type CatalogRepo struct {
	pool *pgxpool.Pool
	conv converter.CatalogConverter
}

func NewCatalogRepo(pool *pgxpool.Pool, conv converter.CatalogConverter) *CatalogRepo {
	return &CatalogRepo{
		pool: pool,
		conv: conv,
	}
}

// FetchCatalog retorna todos os produtos e variações em uma única passada.
// Produtos vêm ordenados por nome, variações por (sku, sort_order) para
// preservar a ordem de cadastro.
func (r *CatalogRepo) FetchCatalog(ctx context.Context) ([]domain.RawProduct, []domain.RawVariant, error) {
	productsQuery := `
		SELECT sku, name, description, photo_url, category, price_cents
		FROM products
		ORDER BY name ASC
	`

	rows, err := r.pool.Query(ctx, productsQuery)
	if err != nil {
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	products := make([]domain.RawProduct, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.Sku, &model.Name, &model.Description,
			&model.PhotoURL, &model.Category, &model.PriceCents,
		); err != nil {
			return nil, nil, e.Wrap(whereami.WhereAmI(), err)
		}

		products = append(products, r.conv.ToRawProduct(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}

	variantsQuery := `
		SELECT id, product_sku, label, status, sort_order
		FROM product_variants
		ORDER BY product_sku ASC, sort_order ASC
	`

	vrows, err := r.pool.Query(ctx, variantsQuery)
	if err != nil {
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer vrows.Close()

	variants := make([]domain.RawVariant, 0)
	for vrows.Next() {
		var model converter.VariantModel
		if err := vrows.Scan(
			&model.ID, &model.ProductSku, &model.Label,
			&model.Status, &model.SortOrder,
		); err != nil {
			return nil, nil, e.Wrap(whereami.WhereAmI(), err)
		}

		variants = append(variants, r.conv.ToRawVariant(&model))
	}
	if err := vrows.Err(); err != nil {
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return products, variants, nil
}
