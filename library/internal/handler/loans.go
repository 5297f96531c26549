package handler

import (
	"net/http"

	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) Borrow(c echo.Context) error {
	var req model.BorrowRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.librarySvc.Borrow(c.Request().Context(), identity(c), req)
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) ReturnBook(c echo.Context) error {
	var ref model.LoanRef
	if err := bind(c, &ref); err != nil {
		return err
	}
	res, err := h.librarySvc.ReturnBook(c.Request().Context(), identity(c), ref)
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) MarkMissing(c echo.Context) error {
	var ref model.LoanRef
	if err := bind(c, &ref); err != nil {
		return err
	}
	res, err := h.librarySvc.MarkMissing(c.Request().Context(), identity(c), ref)
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) SweepOverdue(c echo.Context) error {
	res, err := h.librarySvc.SweepOverdue(c.Request().Context(), identity(c))
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}
