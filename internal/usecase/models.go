package usecase

import (
	"time"

	"github.com/emporiodaserra/storefront-backend/internal/domain"
)

// CATALOG

// AllCategories é o sentinela de categoria "todas" exposto ao cliente.
const AllCategories = "TODAS"

// FilterState é o estado de filtro do catálogo. Alterar texto ou categoria
// sempre volta a página para 1; a página efetiva é re-clampada na consulta.
type FilterState struct {
	Query    string
	Category string
	Page     int
}

func NewFilterState() *FilterState {
	return &FilterState{
		Category: AllCategories,
		Page:     1,
	}
}

// SetQuery altera o texto de busca e reseta a página.
func (f *FilterState) SetQuery(query string) {
	f.Query = query
	f.Page = 1
}

// SetCategory altera a categoria selecionada e reseta a página.
func (f *FilterState) SetCategory(category string) {
	if category == "" {
		category = AllCategories
	}
	f.Category = category
	f.Page = 1
}

// SetPage define a página solicitada (1-based).
func (f *FilterState) SetPage(page int) {
	f.Page = page
}

// CatalogPageRes é a página corrente do catálogo com os metadados de paginação.
type CatalogPageRes struct {
	Items      []domain.Product
	Page       int
	TotalPages int
	Categories []string
}

// CART

// AddCartItemReq é o pedido de inclusão de um item no carrinho.
type AddCartItemReq struct {
	Sku          string
	VariantLabel string
	Name         string
	Photo        string
	Qty          int
}

// UpdateCartQtyReq substitui a quantidade de uma linha existente.
// Qty <= 0 remove a linha.
type UpdateCartQtyReq struct {
	Sku          string
	VariantLabel string
	Qty          int
}

// CartEvent sinaliza que o ledger de um carrinho mudou. Origin identifica a
// instância que originou a escrita, para filtrar o eco da ponte de storage.
type CartEvent struct {
	CartID string `json:"cart_id"`
	Op     string `json:"op"`
	Origin string `json:"origin"`
}

// CHECKOUT

// ComposeOrderReq é o pedido de composição da mensagem de pedido.
type ComposeOrderReq struct {
	CartID  string
	Profile string
	Address domain.DeliveryAddress
}

// ComposeOrderRes carrega a mensagem composta e o deep-link de envio.
// A mensagem é efêmera: não é persistida em lugar nenhum.
type ComposeOrderRes struct {
	Message   string
	Link      string
	ItemCount int
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

// OutboxEvent é um evento de handoff de pedido aguardando publicação.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   string
	CartID      string
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// WriteRawMessageReq publica bytes já serializados sob uma chave de partição.
type WriteRawMessageReq struct {
	Key     string
	Payload []byte
}

// MAPPERS

func NewAddCartItemReq(sku, variantLabel, name, photo string, qty int) *AddCartItemReq {
	return &AddCartItemReq{
		Sku:          sku,
		VariantLabel: variantLabel,
		Name:         name,
		Photo:        photo,
		Qty:          qty,
	}
}

func NewUpdateCartQtyReq(sku, variantLabel string, qty int) *UpdateCartQtyReq {
	return &UpdateCartQtyReq{
		Sku:          sku,
		VariantLabel: variantLabel,
		Qty:          qty,
	}
}

func NewComposeOrderReq(cartID, profile string, address domain.DeliveryAddress) *ComposeOrderReq {
	return &ComposeOrderReq{
		CartID:  cartID,
		Profile: profile,
		Address: address,
	}
}

func NewCatalogPageRes(items []domain.Product, page, totalPages int, categories []string) *CatalogPageRes {
	return &CatalogPageRes{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		Categories: categories,
	}
}

func NewWriteRawMessageReq(key string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		Key:     key,
		Payload: payload,
	}
}
