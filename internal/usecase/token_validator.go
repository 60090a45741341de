package usecase

import (
	"hotel-ordering/internal/domain/owner"
	"hotel-ordering/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (ownerID, hotelID uuid.UUID, role owner.Role, err error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, uuid.UUID, owner.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, uuid.Nil, "", err
	}

	role, err := owner.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, uuid.Nil, "", err
	}

	return claims.OwnerID, claims.HotelID, role, nil
}
