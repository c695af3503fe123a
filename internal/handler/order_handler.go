package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderItemRequest struct {
	ID       int64 `json:"id"`
	Quantity int64 `json:"quantity"`
}

type OrderCreateRequest struct {
	Items        []OrderItemRequest `json:"items"`
	CustomerInfo map[string]any     `json:"customerInfo"`
}

type OrderStatusUpdateRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/orders")
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.PUT("/:id", h.updateStatus)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Response{Success: false, Message: "invalid body"})
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.OrderItemInput{ProductID: it.ID, Quantity: it.Quantity})
	}

	//二重送信防止キーはヘッダーから受け取る（bodyには入れない）
	idemKey := c.Request().Header.Get("X-Idempotency-Key")

	out, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		Items:          items,
		CustomerInfo:   req.CustomerInfo,
		IdempotencyKey: idemKey,
	})
	if err != nil {
		return writeError(c, err)
	}

	//再送なら201ではなく200で既存注文を返す
	if out.Replayed {
		return c.JSON(http.StatusOK, Response{Success: true, Data: out.Order, Message: "order already placed"})
	}
	return c.JSON(http.StatusCreated, Response{Success: true, Data: out.Order, Message: "order created"})
}

func (h *OrderHandler) list(c echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, Response{Success: false, Message: "invalid limit"})
		}
		limit = l
	}

	out, err := h.uc.ListOrders(c.Request().Context(), usecase.ListOrdersInput{
		Status: c.QueryParam("status"),
		Limit:  limit,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeList(c, out.Items, out.Total)
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Response{Success: false, Message: "invalid id"})
	}

	o, err := h.uc.GetOrderDetail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return writeData(c, http.StatusOK, o)
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Response{Success: false, Message: "invalid id"})
	}

	var req OrderStatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Response{Success: false, Message: "invalid body"})
	}

	o, err := h.uc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, Response{Success: true, Data: o, Message: "order status updated"})
}
