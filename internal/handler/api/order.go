package api

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-ordering/internal/domain/order"
	reqdto "hotel-ordering/internal/handler/dto/request"
	resdto "hotel-ordering/internal/handler/dto/response"
	"hotel-ordering/internal/handler/httperr"
	"hotel-ordering/internal/handler/middleware"
	"hotel-ordering/internal/pkg/errs"
	"hotel-ordering/internal/usecase/commands"
	"hotel-ordering/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	tracking      queries.TrackingQueries
	ownerOrders   queries.OwnerOrderQueries
}

func NewOrderHandler(
	orderCommands commands.OrderCommands,
	tracking queries.TrackingQueries,
	ownerOrders queries.OwnerOrderQueries,
) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		tracking:      tracking,
		ownerOrders:   ownerOrders,
	}
}

// @Summary Place an order
// @Description Public order intake: validates the cart, resolves prices server-side and assigns the next global order number
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Cart"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.orderCommands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEmptyCart):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Cart must contain at least one item", nil)
		case errors.Is(err, errs.ErrTableNumberRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Table number is required", nil)
		case errors.Is(err, errs.ErrUnknownMenuItem):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Cart references an unknown or inactive menu item", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order", nil)
		case errors.Is(err, errs.ErrSequenceUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Order numbering is temporarily unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderView(view))
}

// @Summary Track an order by number
// @Description Public polling endpoint for the tracking page
// @Tags orders
// @Produce json
// @Param number path string true "Order number (zero-padding accepted)"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/number/{number} [get]
func (h *OrderHandler) TrackByNumber(c *gin.Context) {
	// Zero-padded display forms like "0007" parse to the stored integer.
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil || number < 1 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("invalid order number"), "Invalid order number", nil)
		return
	}

	view, err := h.tracking.ByNumber(c.Request.Context(), number)
	if err != nil {
		h.abortTrackingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Track an order by id
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) TrackByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID format", nil)
		return
	}

	view, err := h.tracking.ByID(c.Request.Context(), id)
	if err != nil {
		h.abortTrackingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary List orders of the acting hotel
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderListResponse
// @Failure 401 {object} httperr.Response
// @Router /orders/owner [get]
func (h *OrderHandler) ListForOwner(c *gin.Context) {
	hotelID, ok := middleware.GetHotelID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing hotel in context"), "Internal server error", nil)
		return
	}

	items, err := h.ownerOrders.ListForHotel(c.Request.Context(), hotelID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.OrderListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromOrderListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Move an order to the next status
// @Description Applies one step of the status state machine for an order owned by the authenticated hotel
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.TransitionOrderRequest true "Target status"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) Transition(c *gin.Context) {
	hotelID, ok := middleware.GetHotelID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing hotel in context"), "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID format", nil)
		return
	}

	var req reqdto.TransitionOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	target, err := order.NewStatus(req.Status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown order status", nil)
		return
	}

	view, err := h.orderCommands.Transition(c.Request.Context(), id, target, hotelID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errors.Is(err, errs.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Status transition not allowed", nil)
		case errors.Is(err, errs.ErrConcurrentModification):
			httperr.AbortWithError(c, http.StatusConflict, err, "Order was updated concurrently, refresh and retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Delete an order
// @Description Removes an order of the authenticated hotel. Its order number stays consumed and is never reissued.
// @Tags orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	hotelID, ok := middleware.GetHotelID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing hotel in context"), "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID format", nil)
		return
	}

	if err := h.orderCommands.Delete(c.Request.Context(), id, hotelID); err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) abortTrackingError(c *gin.Context, err error) {
	if errors.Is(err, errs.ErrOrderNotFound) {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
