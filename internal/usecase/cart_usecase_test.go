package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/emporiodaserra/storefront-backend/internal/domain"
	"github.com/emporiodaserra/storefront-backend/internal/repository/memory"
	"github.com/emporiodaserra/storefront-backend/internal/usecase"
	"github.com/emporiodaserra/storefront-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartUC(storage usecase.CartStorage) *usecase.CartUseCase {
	return usecase.NewCartUC(storage, "instancia-local", logger.NewSlogLogger())
}

func TestCartAdd_MergeBySum(t *testing.T) {
	storage := memory.NewCartStorage("instancia-local")
	uc := newCartUC(storage)
	ctx := context.Background()

	lines, err := uc.Add(ctx, "c1", usecase.NewAddCartItemReq("A", "250g", "Café", "foto.jpg", 1))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Qty)

	// Mesma identidade soma; identidade diferente cria nova linha.
	lines, err = uc.Add(ctx, "c1", usecase.NewAddCartItemReq("A", "250g", "Café", "foto.jpg", 2))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Qty)

	lines, err = uc.Add(ctx, "c1", usecase.NewAddCartItemReq("A", "500g", "Café", "foto.jpg", 1))
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestCartAdd_QuantityBounds(t *testing.T) {
	storage := memory.NewCartStorage("instancia-local")
	uc := newCartUC(storage)
	ctx := context.Background()

	// Quantidade zero ou negativa vale 1.
	lines, err := uc.Add(ctx, "c1", usecase.NewAddCartItemReq("A", "", "Café", "", 0))
	require.NoError(t, err)
	assert.Equal(t, 1, lines[0].Qty)

	lines, err = uc.Add(ctx, "c1", usecase.NewAddCartItemReq("A", "", "Café", "", -5))
	require.NoError(t, err)
	assert.Equal(t, 2, lines[0].Qty)

	// O total da linha não passa do teto.
	lines, err = uc.Add(ctx, "c1", usecase.NewAddCartItemReq("A", "", "Café", "", 500))
	require.NoError(t, err)
	assert.Equal(t, domain.MaxQty, lines[0].Qty)
}

func TestCartAdd_Validation(t *testing.T) {
	uc := newCartUC(memory.NewCartStorage("instancia-local"))
	ctx := context.Background()

	_, err := uc.Add(ctx, "", usecase.NewAddCartItemReq("A", "", "Café", "", 1))
	assert.Error(t, err)

	_, err = uc.Add(ctx, "c1", usecase.NewAddCartItemReq("", "", "Café", "", 1))
	assert.Error(t, err)

	_, err = uc.Add(ctx, "c1", usecase.NewAddCartItemReq("A", "", "", "", 1))
	assert.Error(t, err)
}

func TestCartUpdateQuantity(t *testing.T) {
	storage := memory.NewCartStorage("instancia-local")
	uc := newCartUC(storage)
	ctx := context.Background()

	_, err := uc.Add(ctx, "c1", usecase.NewAddCartItemReq("A", "250g", "Café", "", 5))
	require.NoError(t, err)

	// Substitui sem somar.
	lines, err := uc.UpdateQuantity(ctx, "c1", usecase.NewUpdateCartQtyReq("A", "250g", 2))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Qty)

	// Quantidade acima do teto é clampada.
	lines, err = uc.UpdateQuantity(ctx, "c1", usecase.NewUpdateCartQtyReq("A", "250g", 500))
	require.NoError(t, err)
	assert.Equal(t, domain.MaxQty, lines[0].Qty)

	// Zero remove a linha.
	lines, err = uc.UpdateQuantity(ctx, "c1", usecase.NewUpdateCartQtyReq("A", "250g", 0))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartRemoveAndClear(t *testing.T) {
	storage := memory.NewCartStorage("instancia-local")
	uc := newCartUC(storage)
	ctx := context.Background()

	_, err := uc.Add(ctx, "c1", usecase.NewAddCartItemReq("A", "250g", "Café", "", 1))
	require.NoError(t, err)
	_, err = uc.Add(ctx, "c1", usecase.NewAddCartItemReq("B", "", "Geleia", "", 1))
	require.NoError(t, err)

	// Remoção de identidade inexistente é no-op.
	lines, err := uc.Remove(ctx, "c1", "A", "500g")
	require.NoError(t, err)
	assert.Len(t, lines, 2)

	lines, err = uc.Remove(ctx, "c1", "A", "250g")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "B", lines[0].Sku)

	require.NoError(t, uc.Clear(ctx, "c1"))
	lines, err = uc.GetAll(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartVariantIdentity_DefaultSentinel(t *testing.T) {
	storage := memory.NewCartStorage("instancia-local")
	uc := newCartUC(storage)
	ctx := context.Background()

	// Rótulo vazio e sentinela explícito são a mesma identidade.
	_, err := uc.Add(ctx, "c1", usecase.NewAddCartItemReq("A", "", "Café", "", 1))
	require.NoError(t, err)

	lines, err := uc.Add(ctx, "c1", usecase.NewAddCartItemReq("A", domain.DefaultVariantLabel, "Café", "", 1))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Qty)
}

func TestCartGetAll_CorruptPayload(t *testing.T) {
	storage := memory.NewCartStorage("instancia-local")
	storage.Seed("c1", []byte("{isto não é json válido"))

	uc := newCartUC(storage)

	lines, err := uc.GetAll(context.Background(), "c1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartGetAll_ReadFailureDegrades(t *testing.T) {
	storage := memory.NewCartStorage("instancia-local")
	storage.ReadErr = errors.New("timeout")

	uc := newCartUC(storage)

	lines, err := uc.GetAll(context.Background(), "c1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartGetAll_LegacyMigration(t *testing.T) {
	storage := memory.NewCartStorage("instancia-local")
	legacy := `[
		{"productId": "A", "variantName": "250g", "productName": "Café", "image": "foto.jpg", "quantity": 2},
		{"productId": "", "quantity": 3},
		{"productId": "B", "productName": "Geleia", "quantity": 0}
	]`
	storage.Seed("c1", []byte(legacy))

	uc := newCartUC(storage)
	ctx := context.Background()

	// Linhas com sku vazio ou quantidade inválida são descartadas na leitura.
	lines, err := uc.GetAll(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "A", lines[0].Sku)
	assert.Equal(t, "250g", lines[0].VariantLabel)
	assert.Equal(t, "Café", lines[0].Name)
	assert.Equal(t, "foto.jpg", lines[0].Photo)
	assert.Equal(t, 2, lines[0].Qty)

	// Após a próxima escrita o formato persistido é o canônico.
	_, err = uc.Add(ctx, "c1", usecase.NewAddCartItemReq("A", "250g", "Café", "foto.jpg", 1))
	require.NoError(t, err)

	data, ok, err := storage.Read(ctx, "c1")
	require.NoError(t, err)
	require.True(t, ok)

	var persisted []map[string]any
	require.NoError(t, json.Unmarshal(data, &persisted))
	require.Len(t, persisted, 1)
	assert.Contains(t, persisted[0], "sku")
	assert.NotContains(t, persisted[0], "productId")
}

func TestCartWriteFailure_StillNotifies(t *testing.T) {
	storage := memory.NewCartStorage("instancia-local")
	storage.WriteErr = errors.New("disk full")

	uc := newCartUC(storage)
	ctx := context.Background()

	events := make([]usecase.CartEvent, 0, 1)
	cancel, err := uc.Subscribe(ctx, "c1", func(ev usecase.CartEvent) {
		events = append(events, ev)
	})
	require.NoError(t, err)
	defer cancel()

	// A falha de escrita não chega ao chamador e a notificação dispara.
	lines, err := uc.Add(ctx, "c1", usecase.NewAddCartItemReq("A", "", "Café", "", 1))
	require.NoError(t, err)
	assert.Len(t, lines, 1)
	require.Len(t, events, 1)
	assert.Equal(t, "add", events[0].Op)
}

func TestCartSubscribe_FiltersOwnEcho(t *testing.T) {
	// O storage publica com a mesma origem da instância: o eco é descartado
	// e só o evento local chega ao observador.
	storage := memory.NewCartStorage("instancia-local")
	uc := newCartUC(storage)
	ctx := context.Background()

	events := make([]usecase.CartEvent, 0, 2)
	cancel, err := uc.Subscribe(ctx, "c1", func(ev usecase.CartEvent) {
		events = append(events, ev)
	})
	require.NoError(t, err)
	defer cancel()

	_, err = uc.Add(ctx, "c1", usecase.NewAddCartItemReq("A", "", "Café", "", 1))
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, "add", events[0].Op)
	assert.Equal(t, "instancia-local", events[0].Origin)
}

func TestCartSubscribe_RetriesBridgeAfterFailure(t *testing.T) {
	// A primeira assinatura falha ao criar a ponte com o storage; a seguinte
	// tenta de novo e, com a ponte de pé, escritas de outra instância chegam
	// aos dois observadores.
	storage := memory.NewCartStorage("outra-instancia")
	storage.SubscribeErr = errors.New("pubsub indisponível")

	uc := newCartUC(storage)
	ctx := context.Background()

	firstEvents := make([]usecase.CartEvent, 0, 1)
	cancel1, err := uc.Subscribe(ctx, "c1", func(ev usecase.CartEvent) {
		firstEvents = append(firstEvents, ev)
	})
	require.NoError(t, err)
	defer cancel1()

	storage.SubscribeErr = nil

	secondEvents := make([]usecase.CartEvent, 0, 1)
	cancel2, err := uc.Subscribe(ctx, "c1", func(ev usecase.CartEvent) {
		secondEvents = append(secondEvents, ev)
	})
	require.NoError(t, err)
	defer cancel2()

	data, err := json.Marshal([]domain.CartLine{domain.NewCartLine("A", "", "Café", "", 1)})
	require.NoError(t, err)
	require.NoError(t, storage.Write(ctx, "c1", data))

	require.Len(t, firstEvents, 1)
	require.Len(t, secondEvents, 1)
	assert.Equal(t, "outra-instancia", firstEvents[0].Origin)
}

func TestCartSubscribe_ReceivesForeignWrites(t *testing.T) {
	// Escrita vinda de outra instância atravessa a ponte do storage.
	storage := memory.NewCartStorage("outra-instancia")
	uc := newCartUC(storage)
	ctx := context.Background()

	events := make([]usecase.CartEvent, 0, 1)
	cancel, err := uc.Subscribe(ctx, "c1", func(ev usecase.CartEvent) {
		events = append(events, ev)
	})
	require.NoError(t, err)
	defer cancel()

	data, err := json.Marshal([]domain.CartLine{domain.NewCartLine("A", "", "Café", "", 1)})
	require.NoError(t, err)
	require.NoError(t, storage.Write(ctx, "c1", data))

	require.Len(t, events, 1)
	assert.Equal(t, "outra-instancia", events[0].Origin)
}
