package converter

import (
	"database/sql"

	"github.com/emporiodaserra/storefront-backend/internal/domain"
	"github.com/emporiodaserra/storefront-backend/internal/usecase"
)

// CatalogConverter converte linhas brutas do catálogo em registros de domínio.
type CatalogConverter interface {
	ToRawProduct(model *ProductModel) domain.RawProduct
	ToRawVariant(model *VariantModel) domain.RawVariant
}

// OutboxEventConverter converte eventos de handoff entre usecase e o modelo
// da tabela checkout_events.
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
}

type CatalogConverterImpl struct{}

func NewCatalogConverterImpl() *CatalogConverterImpl {
	return &CatalogConverterImpl{}
}

func (c *CatalogConverterImpl) ToRawProduct(model *ProductModel) domain.RawProduct {
	return domain.RawProduct{
		Sku:         model.Sku,
		Name:        nullableString(model.Name),
		Description: nullableString(model.Description),
		PhotoURL:    nullableString(model.PhotoURL),
		Category:    nullableString(model.Category),
		PriceCents:  nullableInt64(model.PriceCents),
	}
}

func (c *CatalogConverterImpl) ToRawVariant(model *VariantModel) domain.RawVariant {
	return domain.RawVariant{
		ID:         model.ID,
		ProductSku: model.ProductSku,
		Label:      model.Label,
		Status:     model.Status,
		SortOrder:  model.SortOrder,
	}
}

type OutboxEventConverterImpl struct{}

func NewOutboxEventConverterImpl() *OutboxEventConverterImpl {
	return &OutboxEventConverterImpl{}
}

func (c *OutboxEventConverterImpl) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   entity.EventType,
		CartID:      entity.CartID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (c *OutboxEventConverterImpl) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   model.EventType,
		CartID:      model.CartID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullableInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}
