package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS())
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// set before mounting so that sub-routers inherit them
	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
		})

		r.Route("/restaurants", func(r chi.Router) {
			r.Get("/", h.listRestaurants)
			r.Get("/{id}", h.getRestaurant)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Get("/me", h.getMyRestaurant)
				r.Post("/", h.createRestaurant)
				r.Patch("/{id}", h.updateRestaurant)
			})
		})

		r.Route("/food-items", func(r chi.Router) {
			r.Get("/restaurant/{restaurantId}", h.listFoodItems)
			r.Get("/{id}", h.getFoodItem)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/", h.createFoodItem)
				r.Patch("/{id}", h.updateFoodItem)
				r.Delete("/{id}", h.deleteFoodItem)
			})
		})

		r.Route("/carts", func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.getCart)
			r.Post("/items", h.addCartItem)
			r.Patch("/items/{itemId}", h.updateCartItem)
			r.Delete("/items/{itemId}", h.removeCartItem)
			r.Post("/checkout", h.checkout)
		})

		r.Route("/user", func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/me", h.getCurrentUser)
			r.Patch("/me", h.updateCurrentUser)
		})
	})

	return router
}
