package http

import (
	_ "github.com/emporiodaserra/storefront-backend/docs" // Import dos arquivos gerados
	"github.com/emporiodaserra/storefront-backend/internal/usecase"
	"github.com/emporiodaserra/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, cartUC usecase.CartUC, checkoutUC usecase.CheckoutUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerCatalogRoutes(v1, NewCatalogHandler(catalogUC, r.logger))
		registerCartRoutes(v1, NewCartHandler(cartUC, r.logger))
		registerCheckoutRoutes(v1, NewCheckoutHandler(checkoutUC, r.logger))
	})
}

func registerCatalogRoutes(router chi.Router, handler *CatalogHandler) {
	router.Route("/catalog", func(ct chi.Router) {
		ct.Get("/", handler.getCatalogPage)
		ct.Get("/products/{slug}", handler.getProductBySlug)
	})
}

func registerCartRoutes(router chi.Router, handler *CartHandler) {
	router.Route("/carts/{cartID}", func(cr chi.Router) {
		cr.Delete("/", handler.clearCart)
		cr.Get("/events", handler.streamEvents)
		cr.Route("/items", func(it chi.Router) {
			it.Get("/", handler.getCart)
			it.Post("/", handler.addItem)
			it.Put("/", handler.updateQuantity)
			it.Delete("/", handler.removeItem)
		})
	})
}

func registerCheckoutRoutes(router chi.Router, handler *CheckoutHandler) {
	router.Post("/checkout", handler.composeOrder)
}
