package usecase

import (
	"context"

	"github.com/emporiodaserra/storefront-backend/internal/domain"
)

type CatalogUC interface {
	GetCatalogPage(ctx context.Context, state *FilterState) (*CatalogPageRes, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
}

type CartUC interface {
	GetAll(ctx context.Context, cartID string) ([]domain.CartLine, error)
	Add(ctx context.Context, cartID string, req *AddCartItemReq) ([]domain.CartLine, error)
	UpdateQuantity(ctx context.Context, cartID string, req *UpdateCartQtyReq) ([]domain.CartLine, error)
	Remove(ctx context.Context, cartID, sku, variantLabel string) ([]domain.CartLine, error)
	Clear(ctx context.Context, cartID string) error
	Subscribe(ctx context.Context, cartID string, fn func(CartEvent)) (func(), error)
}

type CheckoutUC interface {
	ComposeOrder(ctx context.Context, req *ComposeOrderReq) (*ComposeOrderRes, error)
}
