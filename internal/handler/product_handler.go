package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// 全レスポンス共通のエンベロープ
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Total   *int   `json:"total,omitempty"`
	Query   string `json:"query,omitempty"`
}

func writeData(c echo.Context, status int, data any) error {
	return c.JSON(status, Response{Success: true, Data: data})
}

func writeList(c echo.Context, data any, total int) error {
	return c.JSON(http.StatusOK, Response{Success: true, Data: data, Total: &total})
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, Response{Success: false, Message: he.Message})
	}

	//500。詳細はログにだけ出す
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, Response{Success: false, Message: "internal error"})
}

// /api/products と /api/search の公開API
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/products")
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)

	e.GET("/api/search", h.search)
}

func (h *ProductHandler) list(c echo.Context) error {
	var minPrice *decimal.Decimal
	if v := c.QueryParam("minPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, Response{Success: false, Message: "invalid minPrice"})
		}
		minPrice = &d
	}

	var maxPrice *decimal.Decimal
	if v := c.QueryParam("maxPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, Response{Success: false, Message: "invalid maxPrice"})
		}
		maxPrice = &d
	}

	out, err := h.uc.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeList(c, out.Items, out.Total)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Response{Success: false, Message: "invalid id"})
	}

	p, err := h.uc.GetProductDetail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return writeData(c, http.StatusOK, p)
}

type ProductCreateRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int64           `json:"stock"`
	Category    string           `json:"category"`
	Emoji       string           `json:"emoji"`
}

func (h *ProductHandler) create(c echo.Context) error {
	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Response{Success: false, Message: "invalid body"})
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Emoji:       req.Emoji,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, Response{Success: true, Data: p, Message: "product created"})
}

type ProductUpdateRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int64           `json:"stock"`
	Category    *string          `json:"category"`
	Emoji       *string          `json:"emoji"`
}

func (h *ProductHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Response{Success: false, Message: "invalid id"})
	}

	var req ProductUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Response{Success: false, Message: "invalid body"})
	}

	p, err := h.uc.UpdateProduct(c.Request().Context(), id, usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Emoji:       req.Emoji,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, Response{Success: true, Data: p, Message: "product updated"})
}

func (h *ProductHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Response{Success: false, Message: "invalid id"})
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, Response{Success: true, Message: "product deleted"})
}

func (h *ProductHandler) search(c echo.Context) error {
	q := c.QueryParam("q")
	out, err := h.uc.SearchProducts(c.Request().Context(), usecase.SearchProductsInput{
		Query: q,
		Sort:  c.QueryParam("sort"),
		Order: c.QueryParam("order"),
	})
	if err != nil {
		return writeError(c, err)
	}

	//検索結果には問い合わせ文字列も添える
	return c.JSON(http.StatusOK, Response{Success: true, Data: out.Items, Total: &out.Total, Query: q})
}
