package handler

import (
	"net/http"

	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/labstack/echo/v4"
)

// Enter and Exit are kiosk calls and need no token.
func (h *Handler) Enter(c echo.Context) error {
	var req model.PresenceRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.librarySvc.Enter(c.Request().Context(), req.StudentID)
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) Exit(c echo.Context) error {
	var req model.PresenceRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.librarySvc.Exit(c.Request().Context(), req.StudentID)
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) PresentStudents(c echo.Context) error {
	res, err := h.librarySvc.PresentStudents(c.Request().Context(), identity(c))
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}
