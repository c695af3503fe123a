package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type StatsHandler struct {
	uc *usecase.StatsUsecase
}

func NewStatsHandler(uc *usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

func (h *StatsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/stats", h.stats)
}

func (h *StatsHandler) stats(c echo.Context) error {
	out, err := h.uc.GetStoreStats(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return writeData(c, http.StatusOK, out)
}
