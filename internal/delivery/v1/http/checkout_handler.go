package http

import (
	"net/http"

	"github.com/emporiodaserra/storefront-backend/internal/domain"
	"github.com/emporiodaserra/storefront-backend/internal/usecase"
	"github.com/emporiodaserra/storefront-backend/pkg/e"
	"github.com/emporiodaserra/storefront-backend/pkg/logger"
)

type CheckoutHandler struct {
	checkoutUsecase usecase.CheckoutUC
	logger          logger.Logger
}

func NewCheckoutHandler(checkoutUsecase usecase.CheckoutUC, logger logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkoutUsecase: checkoutUsecase, logger: logger}
}

type composeOrderBody struct {
	CartID  string `json:"cart_id"`
	Profile string `json:"profile"`
	Address struct {
		Bairro      string `json:"bairro"`
		HouseNumber string `json:"house_number"`
		Reference   string `json:"reference"`
		TimeOfDay   string `json:"time_of_day"`
	} `json:"address"`
}

// ComposeOrderView é a mensagem composta e o link de envio. Nada disso
// fica persistido no servidor.
type ComposeOrderView struct {
	Message   string `json:"message"`
	Link      string `json:"link"`
	ItemCount int    `json:"item_count"`
}

// composeOrder
//
//	@Summary		Monta a mensagem de pedido
//	@Description	Compõe a mensagem do pedido e o deep-link do WhatsApp a partir do carrinho
//	@Tags			checkout
//	@Accept			json
//	@Produce		json
//	@Param			body	body		composeOrderBody	true	"Carrinho e forma de entrega"
//	@Success		200		{object}	ComposeOrderView
//	@Failure		400		{object}	ErrorResponse	"Requisição inválida"
//	@Failure		422		{object}	ErrorResponse	"Carrinho vazio ou entrega não selecionada"
//	@Router			/checkout [post]
func (c *CheckoutHandler) composeOrder(w http.ResponseWriter, r *http.Request) {
	var body composeOrderBody
	if err := readJSON(r, &body); err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	address := domain.DeliveryAddress{
		Bairro:      body.Address.Bairro,
		HouseNumber: body.Address.HouseNumber,
		Reference:   body.Address.Reference,
		TimeOfDay:   body.Address.TimeOfDay,
	}

	res, err := c.checkoutUsecase.ComposeOrder(r.Context(), usecase.NewComposeOrderReq(body.CartID, body.Profile, address))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &ComposeOrderView{
		Message:   res.Message,
		Link:      res.Link,
		ItemCount: res.ItemCount,
	})
}
