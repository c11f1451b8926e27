package dto

import "github.com/stagepass/stagepass/internal/domain"

type VerifyQRRequestDTO struct {
	Data string `json:"data"`
}

type VerifyQRResponseDTO struct {
	Valid   bool              `json:"valid"`
	Error   string            `json:"error,omitempty" example:"signature_invalid"`
	Payload *domain.QRPayload `json:"payload,omitempty"`
}
