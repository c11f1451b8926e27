package qr

import (
	"encoding/json"
	"net/http"

	"github.com/stagepass/stagepass/internal/dto"
	"github.com/stagepass/stagepass/internal/service/qrservice"
	"github.com/stagepass/stagepass/pkg/utils"
)

type Service interface {
	Verify(data []byte) qrservice.VerificationResult
}

type QRHandler struct {
	qrService Service
}

func New(qrService Service) *QRHandler {
	return &QRHandler{
		qrService: qrService,
	}
}

// Verify godoc
//
//	@Summary		Verify a scanned QR payload
//	@Description	Check the signature and expiry of scanned QR data. Always returns a structured verdict; invalid input is a verdict, not an error.
//	@Tags			QR
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyQRRequestDTO	true	"Scanned QR data"
//	@Success		200		{object}	dto.VerifyQRResponseDTO
//	@Failure		400		{object}	utils.Response	"Unreadable request body"
//	@Router			/api/qr/verify [post]
func (h *QRHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyQRRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := h.qrService.Verify([]byte(req.Data))
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyQRResponseDTO{
		Valid:   result.Valid,
		Error:   result.ErrorKind,
		Payload: result.Payload,
	})
}
