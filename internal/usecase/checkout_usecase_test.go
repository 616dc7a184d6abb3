package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/emporiodaserra/storefront-backend/internal/cfg"
	"github.com/emporiodaserra/storefront-backend/internal/domain"
	"github.com/emporiodaserra/storefront-backend/pkg/e"
	"github.com/emporiodaserra/storefront-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCartProvider struct {
	lines []domain.CartLine
	err   error
}

func (f *fakeCartProvider) GetAll(_ context.Context, _ string) ([]domain.CartLine, error) {
	return f.lines, f.err
}

type fakeOutboxRepo struct {
	created []*OutboxEvent
	err     error
}

func (f *fakeOutboxRepo) Create(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, event)
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(_ context.Context, _ int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(_ context.Context, _ int64) error {
	return nil
}

func testCheckoutCfg() *cfg.CheckoutCfg {
	return &cfg.CheckoutCfg{
		WhatsAppHandle: "5531999990000",
		ServiceArea:    "Sete Lagoas e região",
	}
}

func sampleLines() []domain.CartLine {
	return []domain.CartLine{
		domain.NewCartLine("A", "250g", "Café Torrado", "", 2),
		domain.NewCartLine("B", "", "Geleia de Morango", "", 1),
	}
}

func newCheckoutUC(cart CartProvider, outbox CheckoutEventRepository) *CheckoutUseCase {
	return NewCheckoutUC(cart, outbox, testCheckoutCfg(), logger.NewSlogLogger())
}

func TestComposeOrder_LocalDelivery(t *testing.T) {
	outbox := &fakeOutboxRepo{}
	uc := newCheckoutUC(&fakeCartProvider{lines: sampleLines()}, outbox)

	res, err := uc.ComposeOrder(context.Background(), NewComposeOrderReq("c1", domain.DeliveryLocal, domain.DeliveryAddress{
		Bairro:      "Centro",
		HouseNumber: "120",
		Reference:   "perto da praça",
		TimeOfDay:   "manhã",
	}))
	require.NoError(t, err)

	assert.Equal(t, 3, res.ItemCount)
	assert.Contains(t, res.Message, "pedido com entrega em Sete Lagoas e região")
	assert.Contains(t, res.Message, "- 2x Café Torrado — 250g")
	assert.Contains(t, res.Message, "- 1x Geleia de Morango — "+domain.DefaultVariantLabel)
	assert.Contains(t, res.Message, "Total de itens: 3")
	assert.Contains(t, res.Message, "Bairro: Centro")
	assert.Contains(t, res.Message, "Período de preferência: manhã")
	assert.Contains(t, res.Message, availabilityDisclaimer)

	// Mesmo carrinho e perfil produzem sempre a mesma mensagem.
	again, err := uc.ComposeOrder(context.Background(), NewComposeOrderReq("c1", domain.DeliveryLocal, domain.DeliveryAddress{
		Bairro:      "Centro",
		HouseNumber: "120",
		Reference:   "perto da praça",
		TimeOfDay:   "manhã",
	}))
	require.NoError(t, err)
	assert.Equal(t, res.Message, again.Message)
}

func TestComposeOrder_OnlineProfile(t *testing.T) {
	uc := newCheckoutUC(&fakeCartProvider{lines: sampleLines()}, &fakeOutboxRepo{})

	res, err := uc.ComposeOrder(context.Background(), NewComposeOrderReq("c1", domain.DeliveryOnline, domain.DeliveryAddress{}))
	require.NoError(t, err)

	assert.Contains(t, res.Message, "links para compra online")
	assert.NotContains(t, res.Message, "Bairro:")
}

func TestComposeOrder_BlankAddressFields(t *testing.T) {
	uc := newCheckoutUC(&fakeCartProvider{lines: sampleLines()}, &fakeOutboxRepo{})

	res, err := uc.ComposeOrder(context.Background(), NewComposeOrderReq("c1", domain.DeliveryLocal, domain.DeliveryAddress{
		Bairro:      "Centro",
		HouseNumber: "   ",
	}))
	require.NoError(t, err)

	assert.Contains(t, res.Message, "Número: "+notInformed)
	assert.Contains(t, res.Message, "Ponto de referência: "+notInformed)
}

func TestComposeOrder_Preconditions(t *testing.T) {
	uc := newCheckoutUC(&fakeCartProvider{}, &fakeOutboxRepo{})

	_, err := uc.ComposeOrder(context.Background(), NewComposeOrderReq("", domain.DeliveryLocal, domain.DeliveryAddress{}))
	assert.ErrorIs(t, err, e.ErrCartIDRequired)

	_, err = uc.ComposeOrder(context.Background(), NewComposeOrderReq("c1", domain.DeliveryLocal, domain.DeliveryAddress{}))
	assert.ErrorIs(t, err, e.ErrEmptyCart)

	uc = newCheckoutUC(&fakeCartProvider{lines: sampleLines()}, &fakeOutboxRepo{})
	_, err = uc.ComposeOrder(context.Background(), NewComposeOrderReq("c1", "", domain.DeliveryAddress{}))
	assert.ErrorIs(t, err, e.ErrMissingDeliveryChoice)

	_, err = uc.ComposeOrder(context.Background(), NewComposeOrderReq("c1", "motoboy", domain.DeliveryAddress{}))
	assert.ErrorIs(t, err, e.ErrMissingDeliveryChoice)
}

func TestComposeOrder_LinkEncoding(t *testing.T) {
	uc := newCheckoutUC(&fakeCartProvider{lines: sampleLines()}, &fakeOutboxRepo{})

	res, err := uc.ComposeOrder(context.Background(), NewComposeOrderReq("c1", domain.DeliveryOnline, domain.DeliveryAddress{}))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.Link, "https://wa.me/5531999990000?text="), res.Link)

	encoded := strings.TrimPrefix(res.Link, "https://wa.me/5531999990000?text=")
	// Espaço sai como %20, nunca como "+".
	assert.NotContains(t, encoded, "+")
	assert.NotContains(t, encoded, " ")
	assert.Contains(t, encoded, "%20")
}

func TestComposeOrder_RegistersHandoffEvent(t *testing.T) {
	outbox := &fakeOutboxRepo{}
	uc := newCheckoutUC(&fakeCartProvider{lines: sampleLines()}, outbox)

	_, err := uc.ComposeOrder(context.Background(), NewComposeOrderReq("c1", domain.DeliveryLocal, domain.DeliveryAddress{}))
	require.NoError(t, err)

	require.Len(t, outbox.created, 1)
	event := outbox.created[0]
	assert.Equal(t, orderPreparedEventType, event.EventType)
	assert.Equal(t, "c1", event.CartID)
	assert.Equal(t, Pending, event.Status)
	assert.NotEmpty(t, event.EventID)

	var payload handoffPayload
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, "c1", payload.CartID)
	assert.Equal(t, 3, payload.ItemCount)
	assert.Len(t, payload.Lines, 2)
}

func TestComposeOrder_OutboxFailureDoesNotBlock(t *testing.T) {
	outbox := &fakeOutboxRepo{err: errors.New("db offline")}
	uc := newCheckoutUC(&fakeCartProvider{lines: sampleLines()}, outbox)

	res, err := uc.ComposeOrder(context.Background(), NewComposeOrderReq("c1", domain.DeliveryOnline, domain.DeliveryAddress{}))
	require.NoError(t, err)
	assert.NotEmpty(t, res.Link)
}
