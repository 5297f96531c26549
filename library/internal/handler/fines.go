package handler

import (
	"net/http"

	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListFines(c echo.Context) error {
	res, err := h.librarySvc.ListFines(c.Request().Context(), identity(c), c.Param("studentId"))
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) StudentsWithFines(c echo.Context) error {
	res, err := h.librarySvc.StudentsWithFines(c.Request().Context(), identity(c))
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) PayFine(c echo.Context) error {
	var req model.PayFineRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.librarySvc.PayFine(c.Request().Context(), identity(c), req.StudentID, req.Amount)
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}
