//go:build e2e

package order_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	resdto "hotel-ordering/internal/handler/dto/response"
	commonhttp "hotel-ordering/tests/common/httptest"
	"hotel-ordering/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type OrderFlowTestSuite struct {
	e2e.SharedSuite
}

func TestOrderFlowSuite(t *testing.T) {
	suite.Run(t, new(OrderFlowTestSuite))
}

func (s *OrderFlowTestSuite) createOrderRequest() map[string]any {
	return map[string]any{
		"hotel_id":     e2e.FixtureHotelID.String(),
		"table_number": "12",
		"items": []map[string]any{
			{"menu_item_id": e2e.FixtureMenuPaneerTikka.String(), "quantity": 2},
			{"menu_item_id": e2e.FixtureMenuGarlicNaan.String(), "quantity": 1},
		},
		"customer_name": "Asha",
	}
}

func (s *OrderFlowTestSuite) TestOrderIntake() {
	s.Run("first order gets number 1 and server-side prices", func() {
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", s.createOrderRequest(), "")

		var body resdto.OrderResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(1), body.OrderNumber)
		s.Equal("0001", body.DisplayNumber)
		s.Equal("pending", body.Status)
		// 2 x 25000 + 1 x 8000, regardless of anything the client may claim
		s.Equal(int64(58000), body.TotalCents)
		s.Len(body.Items, 2)
	})

	s.Run("numbers are sequential across orders", func() {
		for want := int64(1); want <= 3; want++ {
			rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", s.createOrderRequest(), "")
			var body resdto.OrderResponse
			commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
			s.Equal(want, body.OrderNumber)
		}
	})

	s.Run("inactive menu item is priced at zero", func() {
		req := s.createOrderRequest()
		req["items"] = []map[string]any{
			{"menu_item_id": e2e.FixtureMenuOffMenuCake.String(), "quantity": 1},
			{"menu_item_id": e2e.FixtureMenuGarlicNaan.String(), "quantity": 1},
		}
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", req, "")

		var body resdto.OrderResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(8000), body.TotalCents)
		s.Len(body.Items, 2)
	})

	s.Run("empty cart is rejected without consuming a number", func() {
		req := s.createOrderRequest()
		req["items"] = []map[string]any{}
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", req, "")
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")

		rec = commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", s.createOrderRequest(), "")
		var body resdto.OrderResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(1), body.OrderNumber, "failed request must not leave a gap")
	})

	s.Run("concurrent orders get unique contiguous numbers", func() {
		const n = 20

		numbers := make(chan int64, n)
		var wg sync.WaitGroup
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", s.createOrderRequest(), "")
				if rec.Code != http.StatusCreated {
					numbers <- -1
					return
				}
				var body resdto.OrderResponse
				commonhttp.DecodeResponseBody(s.T(), rec.Body, &body)
				numbers <- body.OrderNumber
			}()
		}
		wg.Wait()
		close(numbers)

		seen := make(map[int64]bool, n)
		for num := range numbers {
			s.Greater(num, int64(0), "every request must succeed")
			s.False(seen[num], "number %d assigned twice", num)
			seen[num] = true
		}
		for want := int64(1); want <= n; want++ {
			s.True(seen[want], "number %d missing from the contiguous block", want)
		}
	})
}

func (s *OrderFlowTestSuite) TestTracking() {
	s.Run("order is trackable by number and by id", func() {
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", s.createOrderRequest(), "")
		var created resdto.OrderResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)

		rec = commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/orders/number/%d", created.OrderNumber), nil, "")
		var byNumber resdto.OrderResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &byNumber)
		s.Equal(created.ID, byNumber.ID)

		// Padded display form works too
		rec = commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/orders/number/"+created.DisplayNumber, nil, "")
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		rec = commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/orders/"+created.ID.String(), nil, "")
		var byID resdto.OrderResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &byID)
		s.Equal(created.OrderNumber, byID.OrderNumber)
	})

	s.Run("unassigned number is 404", func() {
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders/number/9999", nil, "")
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}

func (s *OrderFlowTestSuite) TestLifecycle() {
	transition := func(orderID, token, status string) *resdto.OrderResponse {
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPatch,
			"/api/orders/"+orderID+"/status", map[string]any{"status": status}, token)
		if rec.Code != http.StatusOK {
			s.T().Logf("transition to %s: %d %s", status, rec.Code, rec.Body.String())
			return nil
		}
		var body resdto.OrderResponse
		commonhttp.DecodeResponseBody(s.T(), rec.Body, &body)
		return &body
	}

	s.Run("full status walk to paid", func() {
		token := e2e.LoginOwner(s.T(), s.Router, e2e.FixtureOwnerEmail)

		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", s.createOrderRequest(), "")
		var created resdto.OrderResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)

		for _, status := range []string{"accepted", "preparing", "ready", "completed", "paid"} {
			got := transition(created.ID.String(), token, status)
			s.Require().NotNil(got)
			s.Equal(status, got.Status)
		}

		// Terminal: nothing moves out of paid
		rec = commonhttp.PerformRequest(s.T(), s.Router, http.MethodPatch,
			"/api/orders/"+created.ID.String()+"/status", map[string]any{"status": "cancelled"}, token)
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not allowed")
	})

	s.Run("skipping a step is a conflict", func() {
		token := e2e.LoginOwner(s.T(), s.Router, e2e.FixtureOwnerEmail)

		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", s.createOrderRequest(), "")
		var created resdto.OrderResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)

		rec = commonhttp.PerformRequest(s.T(), s.Router, http.MethodPatch,
			"/api/orders/"+created.ID.String()+"/status", map[string]any{"status": "ready"}, token)
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not allowed")
	})

	s.Run("pending order can be cancelled", func() {
		token := e2e.LoginOwner(s.T(), s.Router, e2e.FixtureOwnerEmail)

		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", s.createOrderRequest(), "")
		var created resdto.OrderResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)

		got := transition(created.ID.String(), token, "cancelled")
		s.Require().NotNil(got)
		s.Equal("cancelled", got.Status)
	})

	s.Run("another hotel's owner gets 404, not 403", func() {
		otherToken := e2e.LoginOwner(s.T(), s.Router, e2e.FixtureOtherOwnerEmail)

		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", s.createOrderRequest(), "")
		var created resdto.OrderResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)

		rec = commonhttp.PerformRequest(s.T(), s.Router, http.MethodPatch,
			"/api/orders/"+created.ID.String()+"/status", map[string]any{"status": "accepted"}, otherToken)
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})

	s.Run("unauthenticated transition is rejected", func() {
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", s.createOrderRequest(), "")
		var created resdto.OrderResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)

		rec = commonhttp.PerformRequest(s.T(), s.Router, http.MethodPatch,
			"/api/orders/"+created.ID.String()+"/status", map[string]any{"status": "accepted"}, "")
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *OrderFlowTestSuite) TestDeletion() {
	createOrder := func() resdto.OrderResponse {
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", s.createOrderRequest(), "")
		var created resdto.OrderResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
		return created
	}

	s.Run("deleted order disappears but its number stays consumed", func() {
		token := e2e.LoginOwner(s.T(), s.Router, e2e.FixtureOwnerEmail)

		first := createOrder()
		second := createOrder()
		s.Equal(int64(1), first.OrderNumber)
		s.Equal(int64(2), second.OrderNumber)

		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodDelete,
			"/api/orders/"+first.ID.String(), nil, token)
		s.Equal(http.StatusNoContent, rec.Code)

		rec = commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/orders/number/%d", first.OrderNumber), nil, "")
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")

		third := createOrder()
		s.Equal(int64(3), third.OrderNumber, "a freed number must never be reissued")
	})

	s.Run("another hotel's owner cannot delete and learns nothing", func() {
		otherToken := e2e.LoginOwner(s.T(), s.Router, e2e.FixtureOtherOwnerEmail)

		created := createOrder()
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodDelete,
			"/api/orders/"+created.ID.String(), nil, otherToken)
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")

		// Still there for its own hotel's guests
		rec = commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/orders/"+created.ID.String(), nil, "")
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("unauthenticated delete is rejected", func() {
		created := createOrder()
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodDelete,
			"/api/orders/"+created.ID.String(), nil, "")
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *OrderFlowTestSuite) TestOwnerList() {
	s.Run("owner sees only their hotel's orders, newest first", func() {
		token := e2e.LoginOwner(s.T(), s.Router, e2e.FixtureOwnerEmail)
		otherToken := e2e.LoginOwner(s.T(), s.Router, e2e.FixtureOtherOwnerEmail)

		for range 2 {
			rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", s.createOrderRequest(), "")
			commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		}

		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders/owner", nil, token)
		var list []resdto.OrderListResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &list)
		s.Len(list, 2)
		s.GreaterOrEqual(list[0].OrderNumber, list[1].OrderNumber)

		rec = commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders/owner", nil, otherToken)
		var otherList []resdto.OrderListResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &otherList)
		s.Empty(otherList)
	})
}
