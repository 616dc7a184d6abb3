package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/emporiodaserra/storefront-backend/internal/domain"
	"github.com/emporiodaserra/storefront-backend/pkg/e"
	"github.com/emporiodaserra/storefront-backend/pkg/logger"
	"github.com/emporiodaserra/storefront-backend/pkg/textutil"
)

const (
	opAdd    = "add"
	opUpdate = "update"
	opRemove = "remove"
	opClear  = "clear"
)

// CartUseCase implementa o ledger de carrinho: um mapeamento persistido de
// chave de identidade (sku::variante) para linha, com substituição integral
// da lista a cada mutação e notificação de mudança para observadores locais
// e de outros contextos (via ponte do storage).
type CartUseCase struct {
	storage CartStorage
	logger  logger.Logger
	origin  string

	mu            sync.Mutex
	subs          map[string]map[int64]func(CartEvent)
	nextSubID     int64
	bridges       map[string]func()
	bridgePending map[string]bool
}

// NewCartUC cria o caso de uso do carrinho. origin identifica esta instância
// nas notificações, para descartar o eco das próprias escritas.
func NewCartUC(storage CartStorage, origin string, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		storage:       storage,
		logger:        logger,
		origin:        origin,
		subs:          make(map[string]map[int64]func(CartEvent)),
		bridges:       make(map[string]func()),
		bridgePending: make(map[string]bool),
	}
}

// GetAll devolve as linhas persistidas do carrinho. Storage ausente,
// ilegível ou corrompido degrada para lista vazia, nunca para erro.
func (c *CartUseCase) GetAll(ctx context.Context, cartID string) ([]domain.CartLine, error) {
	if cartID == "" {
		return nil, e.ErrCartIDRequired
	}

	return c.readLines(ctx, cartID), nil
}

// Add insere uma linha nova ou soma a quantidade à linha de mesma identidade.
// A quantidade solicitada é elevada para no mínimo 1 por chamada; o total da
// linha fica em [1, 99].
func (c *CartUseCase) Add(ctx context.Context, cartID string, req *AddCartItemReq) ([]domain.CartLine, error) {
	const op = "CartUseCase.Add"

	if cartID == "" {
		return nil, e.ErrCartIDRequired
	}
	if req.Sku == "" {
		return nil, e.Wrap(op, e.ErrSkuRequired)
	}
	if req.Name == "" {
		return nil, e.Wrap(op, e.ErrNameRequired)
	}

	qty := req.Qty
	if qty < domain.MinQty {
		qty = domain.MinQty
	}

	lines := c.readLines(ctx, cartID)
	key := domain.CartLineKey(req.Sku, req.VariantLabel)

	found := false
	for i := range lines {
		if lines[i].Key() == key {
			lines[i].Qty = textutil.Clamp(lines[i].Qty+qty, domain.MinQty, domain.MaxQty)
			found = true
			break
		}
	}

	if !found {
		lines = append(lines, domain.NewCartLine(
			req.Sku,
			req.VariantLabel,
			req.Name,
			req.Photo,
			textutil.Clamp(qty, domain.MinQty, domain.MaxQty),
		))
	}

	c.persistAndNotify(ctx, cartID, lines, opAdd)

	return lines, nil
}

// UpdateQuantity substitui a quantidade da linha (sem somar). Quantidade
// menor ou igual a zero remove a linha: nenhuma linha com qty <= 0 existe
// no storage.
func (c *CartUseCase) UpdateQuantity(ctx context.Context, cartID string, req *UpdateCartQtyReq) ([]domain.CartLine, error) {
	const op = "CartUseCase.UpdateQuantity"

	if cartID == "" {
		return nil, e.ErrCartIDRequired
	}
	if req.Sku == "" {
		return nil, e.Wrap(op, e.ErrSkuRequired)
	}

	lines := c.readLines(ctx, cartID)
	key := domain.CartLineKey(req.Sku, req.VariantLabel)

	updated := make([]domain.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.Key() != key {
			updated = append(updated, line)
			continue
		}

		if req.Qty <= 0 {
			continue // remoção implícita
		}

		line.Qty = textutil.Clamp(req.Qty, domain.MinQty, domain.MaxQty)
		updated = append(updated, line)
	}

	c.persistAndNotify(ctx, cartID, updated, opUpdate)

	return updated, nil
}

// Remove apaga a linha com a identidade exata, se existir; no-op caso contrário.
func (c *CartUseCase) Remove(ctx context.Context, cartID, sku, variantLabel string) ([]domain.CartLine, error) {
	if cartID == "" {
		return nil, e.ErrCartIDRequired
	}
	if sku == "" {
		return nil, e.ErrSkuRequired
	}

	lines := c.readLines(ctx, cartID)
	key := domain.CartLineKey(sku, variantLabel)

	updated := make([]domain.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.Key() == key {
			continue
		}
		updated = append(updated, line)
	}

	c.persistAndNotify(ctx, cartID, updated, opRemove)

	return updated, nil
}

// Clear esvazia o carrinho por completo.
func (c *CartUseCase) Clear(ctx context.Context, cartID string) error {
	if cartID == "" {
		return e.ErrCartIDRequired
	}

	c.persistAndNotify(ctx, cartID, []domain.CartLine{}, opClear)

	return nil
}

// Subscribe registra um observador de mudanças do carrinho. O primeiro
// observador de um carrinho ativa a ponte com o storage, de modo que
// mudanças feitas por outros contextos chegam pelo mesmo caminho.
func (c *CartUseCase) Subscribe(ctx context.Context, cartID string, fn func(CartEvent)) (func(), error) {
	const op = "CartUseCase.Subscribe"

	if cartID == "" {
		return nil, e.ErrCartIDRequired
	}

	c.mu.Lock()
	c.nextSubID++
	subID := c.nextSubID
	if c.subs[cartID] == nil {
		c.subs[cartID] = make(map[int64]func(CartEvent))
	}
	c.subs[cartID][subID] = fn
	needBridge := c.bridges[cartID] == nil && !c.bridgePending[cartID]
	if needBridge {
		c.bridgePending[cartID] = true
	}
	c.mu.Unlock()

	if needBridge {
		// A ponte vive enquanto houver observadores, não enquanto durar o
		// request que a criou.
		cancel, err := c.storage.Subscribe(context.Background(), cartID, func(ev CartEvent) {
			if ev.Origin == c.origin {
				return // eco da própria escrita
			}
			c.dispatch(cartID, ev)
		})

		// Falha aqui não remove o observador: a próxima assinatura do mesmo
		// carrinho tenta criar a ponte de novo.
		var orphan func()
		c.mu.Lock()
		delete(c.bridgePending, cartID)
		switch {
		case err != nil:
			c.logger.Warnf("cart storage subscribe failed: %v", e.Wrap(op, err))
		case len(c.subs[cartID]) == 0:
			// Todos os observadores cancelaram durante a criação da ponte
			orphan = cancel
		default:
			c.bridges[cartID] = cancel
		}
		c.mu.Unlock()

		if orphan != nil {
			orphan()
		}
	}

	unsubscribe := func() {
		c.mu.Lock()
		delete(c.subs[cartID], subID)
		var cancelBridge func()
		if len(c.subs[cartID]) == 0 {
			cancelBridge = c.bridges[cartID]
			delete(c.bridges, cartID)
			delete(c.subs, cartID)
		}
		c.mu.Unlock()

		if cancelBridge != nil {
			cancelBridge()
		}
	}

	return unsubscribe, nil
}

// persistAndNotify grava a lista inteira e notifica os observadores locais.
// Falha de escrita não é visível ao usuário: é logada e a notificação dispara
// mesmo assim, mantendo a resposta da interface.
func (c *CartUseCase) persistAndNotify(ctx context.Context, cartID string, lines []domain.CartLine, op string) {
	data, err := json.Marshal(lines)
	if err != nil {
		c.logger.Warnf("cart marshal failed for %s: %v", cartID, err)
	} else if err := c.storage.Write(ctx, cartID, data); err != nil {
		c.logger.Warnf("cart write failed for %s: %v", cartID, err)
	}

	c.dispatch(cartID, CartEvent{CartID: cartID, Op: op, Origin: c.origin})
}

func (c *CartUseCase) dispatch(cartID string, ev CartEvent) {
	c.mu.Lock()
	callbacks := make([]func(CartEvent), 0, len(c.subs[cartID]))
	for _, fn := range c.subs[cartID] {
		callbacks = append(callbacks, fn)
	}
	c.mu.Unlock()

	for _, fn := range callbacks {
		fn(ev)
	}
}

// readLines lê e migra o ledger persistido. Qualquer falha de leitura ou
// formato devolve lista vazia.
func (c *CartUseCase) readLines(ctx context.Context, cartID string) []domain.CartLine {
	data, ok, err := c.storage.Read(ctx, cartID)
	if err != nil {
		c.logger.Warnf("cart read failed for %s: %v", cartID, err)
		return []domain.CartLine{}
	}
	if !ok || len(data) == 0 {
		return []domain.CartLine{}
	}

	var stored []storedCartLine
	if err := json.Unmarshal(data, &stored); err != nil {
		c.logger.Warnf("cart payload corrupted for %s: %v", cartID, err)
		return []domain.CartLine{}
	}

	lines := make([]domain.CartLine, 0, len(stored))
	for _, s := range stored {
		line := s.toDomain()
		if line.Sku == "" || line.Qty < domain.MinQty {
			continue // dados inválidos não atravessam a fronteira do store
		}
		lines = append(lines, line)
	}

	return lines
}

// storedCartLine aceita tanto o formato canônico quanto o formato legado de
// linha persistida. A migração acontece uma única vez, na leitura; nenhum dos
// dois formatos vaza além do contrato público do store.
type storedCartLine struct {
	Sku          string `json:"sku"`
	VariantLabel string `json:"variant_label"`
	Name         string `json:"name"`
	Photo        string `json:"photo"`
	Qty          int    `json:"qty"`

	// Campos do formato legado
	LegacySku     string `json:"productId"`
	LegacyVariant string `json:"variantName"`
	LegacyName    string `json:"productName"`
	LegacyPhoto   string `json:"image"`
	LegacyQty     int    `json:"quantity"`
}

func (s storedCartLine) toDomain() domain.CartLine {
	sku := s.Sku
	if sku == "" {
		sku = s.LegacySku
	}

	variant := s.VariantLabel
	if variant == "" {
		variant = s.LegacyVariant
	}

	name := s.Name
	if name == "" {
		name = s.LegacyName
	}

	photo := s.Photo
	if photo == "" {
		photo = s.LegacyPhoto
	}

	qty := s.Qty
	if qty == 0 {
		qty = s.LegacyQty
	}

	return domain.NewCartLine(sku, variant, name, photo, qty)
}
