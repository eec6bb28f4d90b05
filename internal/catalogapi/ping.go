package catalogapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ping answers liveness probes only; storage is not checked.
func ping(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
