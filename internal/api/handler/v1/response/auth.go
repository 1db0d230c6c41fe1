package response

import "github.com/oportuna/oportuna-api/internal/domain"

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type ImpulsePurchaseResponse struct {
	Impulse           domain.Impulse `json:"impulse"`
	CheckoutSessionID string         `json:"checkout_session_id"`
}

type ReviewResponse struct {
	Review domain.Review `json:"review"`
	Score  float64       `json:"score"`
}
