package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VitalijsFilipovs/auth-service/internal/api/middleware"
)

// DataHandler serves the demo payload endpoints, one public and one behind
// the authentication gate.
type DataHandler struct{}

func NewDataHandler() *DataHandler {
	return &DataHandler{}
}

type dataResponse struct {
	Data string `json:"data"`
}

// Public returns data available without authentication.
//
// @Summary      Public data
// @Tags         data
// @Produce      json
// @Success      200  {object}  dataResponse
// @Router       /public-data [get]
func (h *DataHandler) Public(c echo.Context) error {
	return c.JSON(http.StatusOK, dataResponse{Data: "Public information available to everyone"})
}

// Private returns data scoped to the authenticated caller.
//
// @Summary      Private data
// @Tags         data
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Failure      401  {object}  map[string]string
// @Router       /private-data [get]
func (h *DataHandler) Private(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return c.JSON(http.StatusOK, dataResponse{Data: fmt.Sprintf("Private information for %s", user.Email)})
}
