package usecase

import (
	"context"

	"github.com/emporiodaserra/storefront-backend/internal/domain"
)

// CatalogRepository é a origem de dados do catálogo. Qualquer erro retornado
// é tratado como falha dura de carregamento ("load failure").
type CatalogRepository interface {
	FetchCatalog(ctx context.Context) ([]domain.RawProduct, []domain.RawVariant, error)
}

// CatalogCache guarda a lista normalizada de produtos com TTL.
// Erros de cache nunca interrompem o fluxo; são apenas logados.
type CatalogCache interface {
	GetProducts(ctx context.Context) ([]domain.Product, bool)
	SetProducts(ctx context.Context, products []domain.Product) error
}

// CartStorage é o backend persistente do ledger de carrinho: um único valor
// serializado por carrinho, substituído por inteiro a cada escrita.
// Subscribe entrega sinais de mudança vindos de outros contextos; o cancel
// retornado encerra a assinatura.
type CartStorage interface {
	Read(ctx context.Context, cartID string) (data []byte, ok bool, err error)
	Write(ctx context.Context, cartID string, data []byte) error
	Subscribe(ctx context.Context, cartID string, fn func(CartEvent)) (cancel func(), err error)
}

// CheckoutEventRepository persiste eventos de handoff de pedido (outbox).
type CheckoutEventRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}
