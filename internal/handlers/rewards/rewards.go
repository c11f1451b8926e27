package rewards

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/stagepass/stagepass/internal/catalog"
	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/dto"
	"github.com/stagepass/stagepass/pkg/auth"
	"github.com/stagepass/stagepass/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID string) (*domain.RewardBalance, error)
	GetTransactions(ctx context.Context, userID string) ([]domain.RewardTransaction, error)
}

type RedemptionService interface {
	GetRedemptionInfo(ctx context.Context, userID, workshopID string) (*domain.WorkshopRedemptionInfo, error)
}

type RewardsHandler struct {
	rewardService     Service
	redemptionService RedemptionService
}

func New(rewardService Service, redemptionService RedemptionService) *RewardsHandler {
	return &RewardsHandler{
		rewardService:     rewardService,
		redemptionService: redemptionService,
	}
}

// GetBalance godoc
//
//	@Summary		Get reward balance
//	@Description	Lifetime earned, lifetime redeemed and currently available reward points for the authenticated user.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/rewards/balance [get]
func (h *RewardsHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	balance, err := h.rewardService.GetBalance(r.Context(), identity.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		LifetimeEarned:   balance.LifetimeEarned,
		LifetimeRedeemed: balance.LifetimeRedeemed,
		AvailableBalance: balance.AvailableBalance,
	})
}

// GetTransactions godoc
//
//	@Summary		Get reward transaction history
//	@Description	List the authenticated user's reward ledger entries, newest first.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Success		204	{object}	utils.Response	"No transactions"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/rewards/transactions [get]
func (h *RewardsHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	txs, err := h.rewardService.GetTransactions(r.Context(), identity.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(txs) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No transactions")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(txs))
	for i, tx := range txs {
		response[i] = dto.TransactionResponseDTO{
			TransactionID: tx.TransactionID,
			Type:          string(tx.Type),
			Points:        tx.Points,
			Source:        string(tx.Source),
			Status:        string(tx.Status),
			ReferenceID:   tx.ReferenceID,
			CreatedAt:     tx.CreatedAt.Format(time.RFC3339),
		}
		if tx.ProcessedAt != nil {
			processedAt := tx.ProcessedAt.Format(time.RFC3339)
			response[i].ProcessedAt = &processedAt
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetRedemptionInfo godoc
//
//	@Summary		Preview redemption for a workshop
//	@Description	Maximum redeemable points, the resulting discount and the final payable amount for the authenticated user on one workshop.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Param			workshopID	path		string	true	"Workshop id"
//	@Success		200			{object}	dto.RedemptionInfoResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		422			{object}	utils.Response	"Workshop unknown"
//	@Failure		502			{object}	utils.Response	"Catalog unavailable"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/rewards/redemption/{workshopID} [get]
func (h *RewardsHandler) GetRedemptionInfo(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	info, err := h.redemptionService.GetRedemptionInfo(r.Context(), identity.UserID, chi.URLParam(r, "workshopID"))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrWorkshopNotFound):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, catalog.ErrUnavailable):
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RedemptionInfoResponseDTO{
		WorkshopID:            info.WorkshopID,
		AvailableBalance:      info.AvailableBalance,
		MaxRedeemablePoints:   info.MaxRedeemablePoints,
		RecommendedRedemption: info.RecommendedRedemption,
		DiscountMinor:         info.DiscountMinor,
		FinalAmountMinor:      info.FinalAmountMinor,
	})
}
