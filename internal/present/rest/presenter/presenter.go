package presenter

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	ErrorMessage string `json:"error_message"`
}

// OK wraps a successful response.
func OK(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, payload)
}

// Error collapses any handler failure to the module's single error
// shape: HTTP 400 with the error string relayed to the client.
func Error(c echo.Context, err error) error {
	slog.Warn("request failed",
		slog.String("error", err.Error()),
		slog.String("path", c.Path()),
		slog.String("module", "sites"),
	)
	return c.JSON(http.StatusBadRequest, errorResponse{ErrorMessage: err.Error()})
}
