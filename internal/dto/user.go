package dto

import (
	"time"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
)

// CreateUserRequest defines the data needed to register a user.
type CreateUserRequest struct {
	Email              string `json:"email" binding:"required,email"`
	Name               string `json:"name" binding:"required,max=200"`
	SettlementCurrency string `json:"settlementCurrency" binding:"required,supported_currency" example:"EUR"`
	ReferralCode       string `json:"referralCode,omitempty" binding:"omitempty,alphanum,max=32"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID             string    `json:"userID"`
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	SettlementCurrency string    `json:"settlementCurrency"`
	ReferralCode       *string   `json:"referralCode,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:             u.UserID,
		Email:              u.Email,
		Name:               u.Name,
		SettlementCurrency: u.SettlementCurrency,
		ReferralCode:       u.ReferralCode,
		CreatedAt:          u.CreatedAt,
	}
}
