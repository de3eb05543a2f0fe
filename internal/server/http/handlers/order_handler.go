package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/errors"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/model"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /api/user/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), CurrentUserID(c), items)
	if err != nil {
		if errors.Is(err, domainErrors.ErrEmptyOrder) {
			c.Status(http.StatusUnprocessableEntity)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, dto.FromOrder(*order))
}

// List handles GET /api/user/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, dto.FromOrders(orders))
}

// Stream handles GET /api/user/orders/stream. Each mutation of the user's
// orders pushes a refreshed snapshot as a server-sent event; an optional
// ?status= query narrows the live read to an exact status match.
func (h *OrderHandler) Stream(c *gin.Context) {
	ctx := c.Request.Context()
	userID := CurrentUserID(c)

	var (
		stream <-chan []model.Order
		err    error
	)
	if status := c.Query("status"); status != "" {
		stream, err = h.facade.StreamOrdersByStatus(ctx, userID, model.OrderStatus(status))
	} else {
		stream, err = h.facade.StreamOrders(ctx, userID)
	}
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		orders, ok := <-stream
		if !ok {
			return false
		}
		c.SSEvent("orders", dto.FromOrders(orders))
		return true
	})
}

// Get handles GET /api/user/orders/:number.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.OrderByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.FromOrder(*order))
}

// Items handles GET /api/user/orders/:number/items.
func (h *OrderHandler) Items(c *gin.Context) {
	items, err := h.facade.OrderItems(c.Request.Context(), c.Param("number"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.FromOrderItems(items))
}

// StreamItems handles GET /api/user/orders/:number/items/stream.
func (h *OrderHandler) StreamItems(c *gin.Context) {
	stream, err := h.facade.StreamOrderItems(c.Request.Context(), c.Param("number"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		items, ok := <-stream
		if !ok {
			return false
		}
		c.SSEvent("items", dto.FromOrderItems(items))
		return true
	})
}

// UpdateStatus handles PATCH /api/user/orders/:number/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("number"), model.OrderStatus(req.Status))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}

// AssignDispatch handles PATCH /api/user/orders/:number/dispatch.
func (h *OrderHandler) AssignDispatch(c *gin.Context) {
	var req dto.AssignDispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.DispatchNumber == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.AssignDispatch(c.Request.Context(), c.Param("number"), req.DispatchNumber)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}

// Count handles GET /api/user/orders/count.
func (h *OrderHandler) Count(c *gin.Context) {
	count, err := h.facade.OrdersCount(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// Delete handles DELETE /api/user/orders/:number.
func (h *OrderHandler) Delete(c *gin.Context) {
	err := h.facade.DeleteOrder(c.Request.Context(), c.Param("number"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}
