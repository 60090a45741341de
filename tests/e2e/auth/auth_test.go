//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	resdto "hotel-ordering/internal/handler/dto/response"
	commonhttp "hotel-ordering/tests/common/httptest"
	"hotel-ordering/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type AuthTestSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (s *AuthTestSuite) TestLogin() {
	url := "/api/auth/login"

	s.Run("valid credentials return a hotel-scoped token", func() {
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, url,
			map[string]any{"email": e2e.FixtureOwnerEmail, "password": e2e.FixtureOwnerPassword}, "")

		var body resdto.LoginResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotEmpty(body.Token)
		s.Equal(e2e.FixtureHotelID, body.HotelID)
		s.Equal("owner", body.Role)
	})

	s.Run("wrong password is 401", func() {
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, url,
			map[string]any{"email": e2e.FixtureOwnerEmail, "password": "wrong"}, "")
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("unknown email is indistinguishable from wrong password", func() {
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, url,
			map[string]any{"email": "nobody@nowhere.test", "password": e2e.FixtureOwnerPassword}, "")
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("inactive hotel is 403", func() {
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, url,
			map[string]any{"email": e2e.FixtureInactiveOwnerEmail, "password": e2e.FixtureOwnerPassword}, "")
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "inactive")
	})

	s.Run("token works against a protected route", func() {
		token := e2e.LoginOwner(s.T(), s.Router, e2e.FixtureOwnerEmail)
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders/owner", nil, token)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("garbage token is 401", func() {
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders/owner", nil, "not-a-jwt")
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
