package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/stagepass/stagepass/docs"
	"github.com/stagepass/stagepass/internal/config"
	ordershandlers "github.com/stagepass/stagepass/internal/handlers/orders"
	qrhandlers "github.com/stagepass/stagepass/internal/handlers/qr"
	rewardshandlers "github.com/stagepass/stagepass/internal/handlers/rewards"
	"github.com/stagepass/stagepass/internal/service"
	"github.com/stagepass/stagepass/pkg/auth"
)

type OrderHandler interface {
	CreatePaymentLink(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	CancelOrder(w http.ResponseWriter, r *http.Request)
	RegenerateQR(w http.ResponseWriter, r *http.Request)
	Webhook(w http.ResponseWriter, r *http.Request)
}

type RewardsHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	GetRedemptionInfo(w http.ResponseWriter, r *http.Request)
}

type QRHandler interface {
	Verify(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	OrderHandler   OrderHandler
	RewardsHandler RewardsHandler
	QRHandler      QRHandler

	jwtService auth.JWTServiceInterface
}

func New(cfg *config.Config, s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		OrderHandler:   ordershandlers.New(s.OrderService, cfg.WebhookSecret),
		RewardsHandler: rewardshandlers.New(s.RewardService, s.RedemptionService),
		QRHandler:      qrhandlers.New(s.QRService),
		jwtService:     jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		// unauthenticated surface: gateway callbacks and door scanners
		r.Post("/webhooks/payment", h.OrderHandler.Webhook)
		r.Post("/qr/verify", h.QRHandler.Verify)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))
			r.Route("/orders", func(r chi.Router) {
				r.Post("/payment-link", h.OrderHandler.CreatePaymentLink)
				r.Get("/", h.OrderHandler.GetOrders)
				r.Get("/{orderID}", h.OrderHandler.GetOrder)
				r.Post("/{orderID}/cancel", h.OrderHandler.CancelOrder)
				r.Post("/{orderID}/qr/regenerate", h.OrderHandler.RegenerateQR)
			})
			r.Route("/rewards", func(r chi.Router) {
				r.Get("/balance", h.RewardsHandler.GetBalance)
				r.Get("/transactions", h.RewardsHandler.GetTransactions)
				r.Get("/redemption/{workshopID}", h.RewardsHandler.GetRedemptionInfo)
			})
		})
	})

	return r
}
