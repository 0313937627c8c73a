package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/feastline/orderd/internal/domain/model"
	"github.com/feastline/orderd/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed payload"})
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), Credential(c), dto.ToLineItems(req.Items), req.DeliveryAddress)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OrderEnvelope{Order: dto.FromOrder(order)})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), Credential(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, dto.FromOrder(&orders[i]))
	}

	c.JSON(http.StatusOK, dto.OrdersEnvelope{Orders: response})
}

// Get handles GET /api/orders/:orderID.
func (h *OrderHandler) Get(c *gin.Context) {
	orderID := strings.TrimSpace(c.Param("orderID"))

	order, err := h.facade.Order(c.Request.Context(), Credential(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OrderEnvelope{Order: dto.FromOrder(order)})
}

// UpdateStatus handles PATCH /api/orders/:orderID/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID := strings.TrimSpace(c.Param("orderID"))

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed payload"})
		return
	}

	order, err := h.facade.AdvanceOrder(c.Request.Context(), Credential(c), orderID, model.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OrderEnvelope{Order: dto.FromOrder(order)})
}
