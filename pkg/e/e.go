package e

import "fmt"

var (
	// Falhas de carregamento do catálogo
	ErrCatalogUnavailable = fmt.Errorf("catálogo indisponível no momento")
	ErrProductNotFound    = fmt.Errorf("produto não encontrado")

	// Pré-condições de checkout
	ErrEmptyCart             = fmt.Errorf("o carrinho está vazio")
	ErrMissingDeliveryChoice = fmt.Errorf("selecione uma forma de entrega antes de finalizar")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrCartIDRequired   = fmt.Errorf("cart id is required")
	ErrSkuRequired      = fmt.Errorf("sku is required")
	ErrNameRequired     = fmt.Errorf("item name is required")
	ErrInvalidPage      = fmt.Errorf("invalid page number")
	ErrInvalidQuantity  = fmt.Errorf("invalid quantity")

	// 5xx
	ErrInternalServerError = fmt.Errorf("internal server error")

	// Infraestrutura
	ErrStreamingUnsupported = fmt.Errorf("streaming is not supported by the connection")
)

// Wrap envolve um erro com contexto adicional.
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
