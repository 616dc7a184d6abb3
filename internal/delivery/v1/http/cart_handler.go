package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/emporiodaserra/storefront-backend/internal/domain"
	"github.com/emporiodaserra/storefront-backend/internal/usecase"
	"github.com/emporiodaserra/storefront-backend/pkg/e"
	"github.com/emporiodaserra/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

// CartView é a resposta padrão das operações de carrinho: a lista
// completa de linhas após a operação.
type CartView struct {
	Items []domain.CartLine `json:"items"`
	Count int               `json:"count"`
}

func toCartView(lines []domain.CartLine) *CartView {
	count := 0
	for _, line := range lines {
		count += line.Qty
	}

	return &CartView{
		Items: lines,
		Count: count,
	}
}

type addItemBody struct {
	Sku          string `json:"sku"`
	VariantLabel string `json:"variant_label"`
	Name         string `json:"name"`
	Photo        string `json:"photo"`
	Qty          int    `json:"qty"`
}

type updateQtyBody struct {
	Sku          string `json:"sku"`
	VariantLabel string `json:"variant_label"`
	Qty          int    `json:"qty"`
}

// getCart
//
//	@Summary		Conteúdo do carrinho
//	@Description	Retorna as linhas do carrinho informado
//	@Tags			carts
//	@Produce		json
//	@Param			cartID	path		string	true	"Identificador do carrinho"
//	@Success		200		{object}	CartView
//	@Failure		400		{object}	ErrorResponse
//	@Router			/carts/{cartID}/items [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")

	lines, err := c.cartUsecase.GetAll(r.Context(), cartID)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartView(lines))
}

// addItem
//
//	@Summary		Adiciona um item ao carrinho
//	@Description	Inclui o item ou soma a quantidade à linha existente
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			cartID	path		string		true	"Identificador do carrinho"
//	@Param			body	body		addItemBody	true	"Item a adicionar"
//	@Success		200		{object}	CartView
//	@Failure		400		{object}	ErrorResponse
//	@Router			/carts/{cartID}/items [post]
func (c *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")

	var body addItemBody
	if err := readJSON(r, &body); err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	lines, err := c.cartUsecase.Add(r.Context(), cartID, usecase.NewAddCartItemReq(
		body.Sku, body.VariantLabel, body.Name, body.Photo, body.Qty,
	))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartView(lines))
}

// updateQuantity
//
//	@Summary		Substitui a quantidade de uma linha
//	@Description	Quantidade menor ou igual a zero remove a linha
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			cartID	path		string			true	"Identificador do carrinho"
//	@Param			body	body		updateQtyBody	true	"Nova quantidade"
//	@Success		200		{object}	CartView
//	@Failure		400		{object}	ErrorResponse
//	@Router			/carts/{cartID}/items [put]
func (c *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")

	var body updateQtyBody
	if err := readJSON(r, &body); err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	lines, err := c.cartUsecase.UpdateQuantity(r.Context(), cartID, usecase.NewUpdateCartQtyReq(
		body.Sku, body.VariantLabel, body.Qty,
	))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartView(lines))
}

// removeItem
//
//	@Summary		Remove uma linha do carrinho
//	@Tags			carts
//	@Produce		json
//	@Param			cartID			path		string	true	"Identificador do carrinho"
//	@Param			sku				query		string	true	"SKU do item"
//	@Param			variant_label	query		string	false	"Rótulo da variante"
//	@Success		200				{object}	CartView
//	@Failure		400				{object}	ErrorResponse
//	@Router			/carts/{cartID}/items [delete]
func (c *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")
	sku := r.URL.Query().Get("sku")
	variant := r.URL.Query().Get("variant_label")

	lines, err := c.cartUsecase.Remove(r.Context(), cartID, sku, variant)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartView(lines))
}

// clearCart
//
//	@Summary		Esvazia o carrinho
//	@Tags			carts
//	@Produce		json
//	@Param			cartID	path	string	true	"Identificador do carrinho"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Router			/carts/{cartID} [delete]
func (c *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")

	if err := c.cartUsecase.Clear(r.Context(), cartID); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// streamEvents
//
//	@Summary		Eventos do carrinho (SSE)
//	@Description	Mantém um stream de eventos enquanto o carrinho muda em outras abas ou dispositivos
//	@Tags			carts
//	@Produce		text/event-stream
//	@Param			cartID	path	string	true	"Identificador do carrinho"
//	@Success		200
//	@Failure		400	{object}	ErrorResponse
//	@Router			/carts/{cartID}/events [get]
func (c *CartHandler) streamEvents(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")

	flusher, ok := w.(http.Flusher)
	if !ok {
		c.logger.Warnf("%s", e.ErrStreamingUnsupported.Error())
		WriteError(w, e.ErrStreamingUnsupported)
		return
	}

	// O WriteTimeout do servidor derrubaria o stream; remove o deadline
	// apenas desta conexão.
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		c.logger.Debugf("clear write deadline: %s", err.Error())
	}

	events := make(chan usecase.CartEvent, 8)
	cancel, err := c.cartUsecase.Subscribe(r.Context(), cartID, func(ev usecase.CartEvent) {
		select {
		case events <- ev:
		default:
			// Cliente lento perde eventos intermediários; o próximo GET resincroniza.
		}
	})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-events:
			payload, err := json.Marshal(ev)
			if err != nil {
				c.logger.Warnf("marshal cart event: %s", err.Error())
				continue
			}

			fmt.Fprintf(w, "event: cart\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
