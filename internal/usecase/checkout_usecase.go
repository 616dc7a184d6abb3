package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/emporiodaserra/storefront-backend/internal/cfg"
	"github.com/emporiodaserra/storefront-backend/internal/domain"
	"github.com/emporiodaserra/storefront-backend/pkg/e"
	"github.com/emporiodaserra/storefront-backend/pkg/logger"
	"github.com/google/uuid"
)

const (
	// availabilityDisclaimer é o aviso fixo de confirmação de estoque.
	availabilityDisclaimer = "A disponibilidade dos itens será confirmada pelo WhatsApp antes da finalização do pedido."

	// notInformed é o placeholder de campo de endereço em branco.
	notInformed = "(não informado)"

	// orderPreparedEventType identifica o evento de handoff no outbox.
	orderPreparedEventType = "order.prepared"
)

// CartProvider é a visão do carrinho necessária ao checkout.
type CartProvider interface {
	GetAll(ctx context.Context, cartID string) ([]domain.CartLine, error)
}

// CheckoutUseCase compõe a mensagem de pedido e o deep-link de WhatsApp.
// A mensagem composta é efêmera: o caso de uso registra apenas um evento de
// handoff no outbox, com os metadados do pedido.
type CheckoutUseCase struct {
	cart       CartProvider
	outboxRepo CheckoutEventRepository
	cfg        *cfg.CheckoutCfg
	logger     logger.Logger
}

func NewCheckoutUC(
	cart CartProvider,
	outboxRepo CheckoutEventRepository,
	cfg *cfg.CheckoutCfg,
	logger logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		cart:       cart,
		outboxRepo: outboxRepo,
		cfg:        cfg,
		logger:     logger,
	}
}

// ComposeOrder valida as pré-condições, serializa o carrinho no formato do
// perfil de entrega escolhido e devolve o texto com o deep-link de envio.
// Carrinho vazio e perfil ausente bloqueiam a composição com erros distintos.
func (c *CheckoutUseCase) ComposeOrder(ctx context.Context, req *ComposeOrderReq) (*ComposeOrderRes, error) {
	const op = "CheckoutUseCase.ComposeOrder"

	if req.CartID == "" {
		return nil, e.ErrCartIDRequired
	}

	lines, err := c.cart.GetAll(ctx, req.CartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(lines) == 0 {
		return nil, e.ErrEmptyCart
	}

	if !domain.ValidDeliveryProfile(req.Profile) {
		return nil, e.ErrMissingDeliveryChoice
	}

	message := composeMessage(lines, req.Profile, req.Address, c.cfg.ServiceArea)
	link := buildWhatsAppLink(c.cfg.WhatsAppHandle, message)

	c.registerHandoff(ctx, req, lines)

	return &ComposeOrderRes{
		Message:   message,
		Link:      link,
		ItemCount: totalItems(lines),
	}, nil
}

// registerHandoff grava o evento de handoff no outbox. Falha aqui não pode
// impedir o pedido: o link já foi composto, então apenas logamos.
func (c *CheckoutUseCase) registerHandoff(ctx context.Context, req *ComposeOrderReq, lines []domain.CartLine) {
	const op = "CheckoutUseCase.registerHandoff"

	payload, err := json.Marshal(newHandoffPayload(req, lines))
	if err != nil {
		c.logger.Warnf("handoff payload marshal failed: %v", e.Wrap(op, err))
		return
	}

	event := &OutboxEvent{
		EventID:   uuid.NewString(),
		EventType: orderPreparedEventType,
		CartID:    req.CartID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := c.outboxRepo.Create(ctx, event); err != nil {
		c.logger.Warnf("handoff event insert failed: %v", e.Wrap(op, err))
	}
}

// composeMessage monta o documento de texto do pedido, determinístico para
// um mesmo carrinho e perfil. Cada linha sai como "- <qtd>x <nome> — <variante>",
// na ordem armazenada do carrinho.
func composeMessage(lines []domain.CartLine, profile string, addr domain.DeliveryAddress, serviceArea string) string {
	var b strings.Builder

	if profile == domain.DeliveryLocal {
		fmt.Fprintf(&b, "Olá! Gostaria de fazer um pedido com entrega em %s:\n\n", serviceArea)
	} else {
		b.WriteString("Olá! Tenho interesse nos itens abaixo e gostaria de receber os links para compra online:\n\n")
	}

	for _, line := range lines {
		label := line.VariantLabel
		if label == "" {
			label = domain.DefaultVariantLabel
		}
		fmt.Fprintf(&b, "- %dx %s — %s\n", line.Qty, line.Name, label)
	}

	fmt.Fprintf(&b, "\nTotal de itens: %d\n\n%s", totalItems(lines), availabilityDisclaimer)

	if profile == domain.DeliveryLocal {
		fmt.Fprintf(&b, "\n\nBairro: %s", orPlaceholder(addr.Bairro))
		fmt.Fprintf(&b, "\nNúmero: %s", orPlaceholder(addr.HouseNumber))
		fmt.Fprintf(&b, "\nPonto de referência: %s", orPlaceholder(addr.Reference))
		fmt.Fprintf(&b, "\nPeríodo de preferência: %s", orPlaceholder(addr.TimeOfDay))
	}

	return b.String()
}

// buildWhatsAppLink embute a mensagem percent-encoded no parâmetro text do
// deep-link. A responsabilidade do núcleo termina na string codificada;
// abrir o link é problema da interface.
func buildWhatsAppLink(handle, message string) string {
	return "https://wa.me/" + handle + "?text=" + encodeComponent(message)
}

// encodeComponent codifica no estilo encodeURIComponent: espaço vira %20,
// não "+".
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func orPlaceholder(field string) string {
	if strings.TrimSpace(field) == "" {
		return notInformed
	}

	return field
}

func totalItems(lines []domain.CartLine) int {
	total := 0
	for _, line := range lines {
		total += line.Qty
	}

	return total
}

// handoffPayload é o corpo JSON do evento de handoff publicado no tópico.
type handoffPayload struct {
	CartID     string        `json:"cart_id"`
	Profile    string        `json:"profile"`
	ItemCount  int           `json:"item_count"`
	Lines      []payloadLine `json:"lines"`
	OccurredAt time.Time     `json:"occurred_at"`
}

type payloadLine struct {
	Sku          string `json:"sku"`
	VariantLabel string `json:"variant_label"`
	Name         string `json:"name"`
	Qty          int    `json:"qty"`
}

func newHandoffPayload(req *ComposeOrderReq, lines []domain.CartLine) handoffPayload {
	payloadLines := make([]payloadLine, 0, len(lines))
	for _, line := range lines {
		payloadLines = append(payloadLines, payloadLine{
			Sku:          line.Sku,
			VariantLabel: line.VariantLabel,
			Name:         line.Name,
			Qty:          line.Qty,
		})
	}

	return handoffPayload{
		CartID:     req.CartID,
		Profile:    req.Profile,
		ItemCount:  totalItems(lines),
		Lines:      payloadLines,
		OccurredAt: time.Now().UTC(),
	}
}
