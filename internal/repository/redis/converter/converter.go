package converter

import (
	"github.com/emporiodaserra/storefront-backend/internal/domain"
)

// ProductConverter converte entre o view model do catálogo e o modelo
// serializado no Redis.
type ProductConverter interface {
	ToRedisModel(product domain.Product) ProductRedisModel
	ToDomain(model ProductRedisModel) domain.Product
	ToArrRedisModel(products []domain.Product) []ProductRedisModel
	ToArrDomain(models []ProductRedisModel) []domain.Product
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (c *ProductConverterImpl) ToRedisModel(product domain.Product) ProductRedisModel {
	variants := make([]VariantRedisModel, 0, len(product.Variants))
	for _, v := range product.Variants {
		variants = append(variants, VariantRedisModel{
			ID:     v.ID,
			Label:  v.Label,
			Status: v.Status,
		})
	}

	return ProductRedisModel{
		ID:          product.ID,
		Slug:        product.Slug,
		Name:        product.Name,
		Description: product.Description,
		Images:      product.Images,
		Category:    product.Category,
		PriceCents:  product.PriceCents,
		PriceLabel:  product.PriceLabel,
		Variants:    variants,
	}
}

func (c *ProductConverterImpl) ToDomain(model ProductRedisModel) domain.Product {
	variants := make([]domain.Variant, 0, len(model.Variants))
	for _, v := range model.Variants {
		variants = append(variants, domain.NewVariant(v.ID, v.Label, v.Status))
	}

	return domain.Product{
		ID:          model.ID,
		Slug:        model.Slug,
		Name:        model.Name,
		Description: model.Description,
		Images:      model.Images,
		Category:    model.Category,
		PriceCents:  model.PriceCents,
		PriceLabel:  model.PriceLabel,
		Variants:    variants,
	}
}

func (c *ProductConverterImpl) ToArrRedisModel(products []domain.Product) []ProductRedisModel {
	models := make([]ProductRedisModel, 0, len(products))
	for _, p := range products {
		models = append(models, c.ToRedisModel(p))
	}

	return models
}

func (c *ProductConverterImpl) ToArrDomain(models []ProductRedisModel) []domain.Product {
	products := make([]domain.Product, 0, len(models))
	for _, m := range models {
		products = append(products, c.ToDomain(m))
	}

	return products
}
