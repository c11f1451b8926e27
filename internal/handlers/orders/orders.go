package orders

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/stagepass/stagepass/internal/catalog"
	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/dto"
	"github.com/stagepass/stagepass/internal/gateway"
	orderservice "github.com/stagepass/stagepass/internal/service/orderservice"
	"github.com/stagepass/stagepass/internal/service/redemption"
	"github.com/stagepass/stagepass/pkg/auth"
	"github.com/stagepass/stagepass/pkg/utils"
)

type Service interface {
	CreatePaymentLink(ctx context.Context, identity auth.Identity, workshopID string, pointsToRedeem int64) (*orderservice.PaymentLinkResult, error)
	GetOrders(ctx context.Context, userID string) ([]domain.Order, error)
	GetOrder(ctx context.Context, userID, orderID string) (*domain.Order, error)
	CancelOrder(ctx context.Context, userID, orderID string) error
	RegenerateQR(ctx context.Context, userID, orderID string) error
	HandleGatewayCallback(ctx context.Context, event *gateway.Event) error
}

type OrderHandler struct {
	orderService  Service
	webhookSecret string
}

func New(orderService Service, webhookSecret string) *OrderHandler {
	return &OrderHandler{
		orderService:  orderService,
		webhookSecret: webhookSecret,
	}
}

// CreatePaymentLink godoc
//
//	@Summary		Request a payment link for a workshop
//	@Description	Create (or return the still-active) payment link for the authenticated user and workshop, optionally redeeming reward points for a discount.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePaymentLinkRequestDTO	true	"Workshop and optional redemption"
//	@Success		201		{object}	dto.PaymentLinkResponseDTO		"New payment link issued"
//	@Success		200		{object}	dto.PaymentLinkResponseDTO		"Existing active link returned"
//	@Failure		400		{object}	utils.Response					"Invalid request or redemption"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		402		{object}	utils.Response					"Insufficient reward balance"
//	@Failure		422		{object}	utils.Response					"Workshop unknown or not purchasable"
//	@Failure		502		{object}	utils.Response					"Payment gateway unavailable"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/orders/payment-link [post]
func (h *OrderHandler) CreatePaymentLink(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreatePaymentLinkRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.WorkshopID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "workshop_id is required")
		return
	}
	if req.PointsToRedeem < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "points_to_redeem must not be negative")
		return
	}

	result, err := h.orderService.CreatePaymentLink(r.Context(), identity, req.WorkshopID, req.PointsToRedeem)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrWorkshopNotFound),
			errors.Is(err, orderservice.ErrWorkshopNotPurchasable):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, redemption.ErrRedemptionNotAllowed):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, gateway.ErrUnavailable), errors.Is(err, catalog.ErrUnavailable):
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	status := http.StatusCreated
	if result.IsExisting {
		status = http.StatusOK
	}
	order := result.Order
	utils.RespondWithJSON(w, status, dto.PaymentLinkResponseDTO{
		OrderID:          order.OrderID,
		PaymentLinkURL:   order.PaymentLinkURL,
		Status:           string(order.Status),
		AmountMinor:      order.AmountMinor,
		DiscountMinor:    order.DiscountMinor,
		FinalAmountMinor: order.FinalAmountMinor,
		Currency:         order.Currency,
		PointsRedeemed:   order.PointsRedeemed,
		CashbackPoints:   order.CashbackPoints,
		IsExisting:       result.IsExisting,
	})
}

// GetOrders godoc
//
//	@Summary		Get order history
//	@Description	List the authenticated user's orders, newest first.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GetOrderResponseDTO
//	@Success		204	{object}	utils.Response	"No orders"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orders, err := h.orderService.GetOrders(r.Context(), identity.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No orders")
		return
	}

	response := make([]dto.GetOrderResponseDTO, len(orders))
	for i, order := range orders {
		response[i] = toOrderDTO(&order)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOrder godoc
//
//	@Summary		Get one order
//	@Description	Fetch a single order, including the QR payload once issued.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			orderID	path		string	true	"Order id"
//	@Success		200		{object}	dto.GetOrderResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), identity.UserID, chi.URLParam(r, "orderID"))
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound),
			errors.Is(err, orderservice.ErrNotOrderOwner):
			// foreign orders are indistinguishable from missing ones
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// CancelOrder godoc
//
//	@Summary		Cancel a pending order
//	@Description	Cancel an order still awaiting payment. Any redemption hold on it is released.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			orderID	path		string			true	"Order id"
//	@Success		200		{object}	utils.Response	"Order cancelled"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Order already settled"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID}/cancel [post]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	err := h.orderService.CancelOrder(r.Context(), identity.UserID, chi.URLParam(r, "orderID"))
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound),
			errors.Is(err, orderservice.ErrNotOrderOwner):
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		case errors.Is(err, orderservice.ErrOrderNotActive):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "order cancelled"})
}

// RegenerateQR godoc
//
//	@Summary		Regenerate the QR code of a paid order
//	@Description	Drop the stored QR payload so the issuance worker re-issues it. Only the order owner may regenerate.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			orderID	path		string			true	"Order id"
//	@Success		202		{object}	utils.Response	"Regeneration scheduled"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Order is not paid"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID}/qr/regenerate [post]
func (h *OrderHandler) RegenerateQR(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	err := h.orderService.RegenerateQR(r.Context(), identity.UserID, chi.URLParam(r, "orderID"))
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound),
			errors.Is(err, orderservice.ErrNotOrderOwner):
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		case errors.Is(err, orderservice.ErrOrderNotPaid):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, utils.Response{Message: "QR regeneration scheduled"})
}

// Webhook godoc
//
//	@Summary		Payment gateway callback
//	@Description	Receive payment outcome events from the gateway. The HMAC signature header is verified before any processing; replays are absorbed.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			X-Webhook-Signature	header		string			true	"Hex HMAC-SHA256 of the body"
//	@Success		200					{object}	utils.Response	"Event processed"
//	@Failure		400					{object}	utils.Response	"Malformed event"
//	@Failure		401					{object}	utils.Response	"Bad signature"
//	@Failure		404					{object}	utils.Response	"Unknown order"
//	@Failure		500					{object}	utils.Response	"Internal server error"
//	@Router			/api/webhooks/payment [post]
func (h *OrderHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if !gateway.VerifySignature(h.webhookSecret, body, r.Header.Get("X-Webhook-Signature")) {
		utils.RespondWithError(w, http.StatusUnauthorized, "invalid signature")
		return
	}

	event, err := gateway.ParseEvent(body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.orderService.HandleGatewayCallback(r.Context(), event); err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
}

func toOrderDTO(order *domain.Order) dto.GetOrderResponseDTO {
	resp := dto.GetOrderResponseDTO{
		OrderID:          order.OrderID,
		WorkshopID:       order.WorkshopID,
		WorkshopTitle:    order.Workshop.Title,
		Status:           string(order.Status),
		AmountMinor:      order.AmountMinor,
		DiscountMinor:    order.DiscountMinor,
		FinalAmountMinor: order.FinalAmountMinor,
		Currency:         order.Currency,
		PointsRedeemed:   order.PointsRedeemed,
		CashbackPoints:   order.CashbackPoints,
		QRCodeData:       order.QRCodeData,
		CreatedAt:        order.CreatedAt.Format(time.RFC3339),
	}
	if order.Status == domain.OrderStatusCreated {
		resp.PaymentLinkURL = order.PaymentLinkURL
	}
	if order.PaidAt != nil {
		paidAt := order.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &paidAt
	}
	return resp
}
