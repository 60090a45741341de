package response

import (
	"hotel-ordering/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	Token   string    `json:"token"`
	OwnerID uuid.UUID `json:"owner_id"`
	HotelID uuid.UUID `json:"hotel_id"`
	Role    string    `json:"role"`
}

func FromLoginResult(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:   result.Token,
		OwnerID: result.OwnerID,
		HotelID: result.HotelID,
		Role:    result.Role,
	}
}
