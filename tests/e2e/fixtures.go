//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	resdto "hotel-ordering/internal/handler/dto/response"
	"hotel-ordering/internal/pkg/password"
	commonhttp "hotel-ordering/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference data shared by every e2e suite. Two hotels so cross-hotel
// isolation can be asserted, plus one inactive hotel for the login path.
var (
	FixtureHotelID         = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	FixtureOtherHotelID    = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	FixtureInactiveHotelID = uuid.MustParse("33333333-3333-3333-3333-333333333333")

	FixtureMenuPaneerTikka = uuid.MustParse("aaaaaaaa-1111-1111-1111-111111111111") // 25000
	FixtureMenuGarlicNaan  = uuid.MustParse("aaaaaaaa-2222-2222-2222-222222222222") // 8000
	FixtureMenuOffMenuCake = uuid.MustParse("aaaaaaaa-3333-3333-3333-333333333333") // inactive

	FixtureOwnerEmail         = "owner@grandpalace.test"
	FixtureOtherOwnerEmail    = "owner@seaview.test"
	FixtureInactiveOwnerEmail = "owner@closed.test"
	FixtureOwnerPassword      = "owner-password-123"
)

func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hash, err := password.HashPassword(FixtureOwnerPassword)
	if err != nil {
		return fmt.Errorf("failed to hash fixture password: %w", err)
	}

	hotels := []struct {
		id     uuid.UUID
		name   string
		active bool
	}{
		{FixtureHotelID, "Grand Palace", true},
		{FixtureOtherHotelID, "Sea View", true},
		{FixtureInactiveHotelID, "Closed Doors", false},
	}
	for _, h := range hotels {
		if _, err := pool.Exec(ctx,
			`INSERT INTO hotels (id, name, active) VALUES ($1, $2, $3)`,
			h.id, h.name, h.active); err != nil {
			return fmt.Errorf("failed to seed hotel %s: %w", h.name, err)
		}
	}

	owners := []struct {
		hotelID uuid.UUID
		email   string
	}{
		{FixtureHotelID, FixtureOwnerEmail},
		{FixtureOtherHotelID, FixtureOtherOwnerEmail},
		{FixtureInactiveHotelID, FixtureInactiveOwnerEmail},
	}
	for _, o := range owners {
		if _, err := pool.Exec(ctx,
			`INSERT INTO owners (hotel_id, email, password_hash, role) VALUES ($1, $2, $3, 'owner')`,
			o.hotelID, o.email, hash); err != nil {
			return fmt.Errorf("failed to seed owner %s: %w", o.email, err)
		}
	}

	menuItems := []struct {
		id      uuid.UUID
		hotelID uuid.UUID
		name    string
		price   int64
		active  bool
	}{
		{FixtureMenuPaneerTikka, FixtureHotelID, "Paneer Tikka", 25000, true},
		{FixtureMenuGarlicNaan, FixtureHotelID, "Garlic Naan", 8000, true},
		{FixtureMenuOffMenuCake, FixtureHotelID, "Seasonal Cake", 40000, false},
	}
	for _, m := range menuItems {
		if _, err := pool.Exec(ctx,
			`INSERT INTO menu_items (id, hotel_id, name, price_cents, active) VALUES ($1, $2, $3, $4, $5)`,
			m.id, m.hotelID, m.name, m.price, m.active); err != nil {
			return fmt.Errorf("failed to seed menu item %s: %w", m.name, err)
		}
	}

	return nil
}

// ResetOrderState clears everything a test can create while keeping the
// reference data. The sequence is reset too so number assertions stay stable.
func ResetOrderState(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, `TRUNCATE orders, order_items`); err != nil {
		return fmt.Errorf("failed to truncate order tables: %w", err)
	}
	if _, err := pool.Exec(ctx, `DELETE FROM sequences`); err != nil {
		return fmt.Errorf("failed to reset sequences: %w", err)
	}
	return nil
}

// LoginOwner exchanges seeded credentials through the real login endpoint.
func LoginOwner(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	rec := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		map[string]any{"email": email, "password": FixtureOwnerPassword}, "")
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())

	var body resdto.LoginResponse
	commonhttp.DecodeResponseBody(t, rec.Body, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}
