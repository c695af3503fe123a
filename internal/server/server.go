package server

import (
	"errors"
	"net/http"

	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// 各ハンドラが自分のルートを登録する
type Router interface {
	RegisterRoutes(e *echo.Echo)
}

// Newはechoインスタンスを組み立てる。テストはこれをhttptestに載せる。
func New(cfg config.Config, routers ...Router) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.FEURL},
	}))

	e.HTTPErrorHandler = errorHandler
	e.Static("/", cfg.StaticDir)

	for _, r := range routers {
		r.RegisterRoutes(e)
	}

	return e
}

func Start(cfg config.Config, routers ...Router) error {
	return New(cfg, routers...).Start(cfg.Addr())
}

// ハンドラの外で起きたエラー（未知のルート、panic等）もエンベロープで返す
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if code == http.StatusNotFound {
			message = "route not found"
		} else if s, ok := he.Message.(string); ok {
			message = s
		}
	}

	if code == http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	_ = c.JSON(code, handler.Response{Success: false, Message: message})
}
