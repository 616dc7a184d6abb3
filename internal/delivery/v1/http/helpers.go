package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/emporiodaserra/storefront-backend/pkg/e"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, e.ErrCatalogUnavailable.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrEmptyCart):
		return http.StatusUnprocessableEntity, e.ErrEmptyCart.Error()
	case errors.Is(err, e.ErrMissingDeliveryChoice):
		return http.StatusUnprocessableEntity, e.ErrMissingDeliveryChoice.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrCartIDRequired):
		return http.StatusBadRequest, e.ErrCartIDRequired.Error()
	case errors.Is(err, e.ErrSkuRequired):
		return http.StatusBadRequest, e.ErrSkuRequired.Error()
	case errors.Is(err, e.ErrNameRequired):
		return http.StatusBadRequest, e.ErrNameRequired.Error()
	case errors.Is(err, e.ErrInvalidPage):
		return http.StatusBadRequest, e.ErrInvalidPage.Error()
	case errors.Is(err, e.ErrInvalidQuantity):
		return http.StatusBadRequest, e.ErrInvalidQuantity.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func readJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return nil
}

// parsePageParam lê o parâmetro de página da query string.
// Ausente ou vazio vale 1; valores não numéricos são rejeitados,
// valores fora da faixa são re-clampados na consulta.
func parsePageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, e.Wrap(raw, e.ErrInvalidPage)
	}

	return page, nil
}
