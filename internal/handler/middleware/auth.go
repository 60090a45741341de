package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hotel-ordering/internal/domain/owner"
	"hotel-ordering/internal/handler/httperr"
	"hotel-ordering/internal/pkg/errs"
	"hotel-ordering/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxOwnerIDKey   = "owner_id"
	ctxHotelIDKey   = "hotel_id"
	ctxOwnerRoleKey = "owner_role"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireOwner authenticates a hotel owner and scopes the request to the
// hotel carried in the token. Handlers read the hotel id from context and
// must never take it from the request body.
func (m *AuthMiddleware) RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing bearer token"), "Access token required", nil)
			return
		}

		ownerID, hotelID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxOwnerIDKey, ownerID)
		c.Set(ctxHotelIDKey, hotelID)
		c.Set(ctxOwnerRoleKey, role)
		c.Next()
	}
}

func GetOwnerID(c *gin.Context) (uuid.UUID, bool) {
	ownerID, exists := c.Get(ctxOwnerIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := ownerID.(uuid.UUID)
	return id, ok
}

// GetHotelID returns the hotel the authenticated owner acts for.
func GetHotelID(c *gin.Context) (uuid.UUID, bool) {
	hotelID, exists := c.Get(ctxHotelIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := hotelID.(uuid.UUID)
	return id, ok
}

func GetOwnerRole(c *gin.Context) (owner.Role, bool) {
	ownerRole, exists := c.Get(ctxOwnerRoleKey)
	if !exists {
		return "", false
	}

	role, ok := ownerRole.(owner.Role)
	return role, ok
}
