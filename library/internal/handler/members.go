package handler

import (
	"fmt"
	"net/http"

	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListMembers(c echo.Context) error {
	res, err := h.librarySvc.ListMembers(c.Request().Context(), identity(c))
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) Register(c echo.Context) error {
	var req model.RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.librarySvc.Register(c.Request().Context(), identity(c), req)
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) RemoveMember(c echo.Context) error {
	var req model.RemoveMemberRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.librarySvc.RemoveMember(c.Request().Context(), identity(c), req)
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) ListLibrarians(c echo.Context) error {
	res, err := h.librarySvc.ListLibrarians(c.Request().Context(), identity(c))
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) AddLibrarian(c echo.Context) error {
	var req model.AddLibrarianRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.librarySvc.AddLibrarian(c.Request().Context(), identity(c), req)
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) RemoveLibrarian(c echo.Context) error {
	res, err := h.librarySvc.RemoveLibrarian(c.Request().Context(), identity(c), c.Param("librarianId"))
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, model.Message{
		Message: fmt.Sprintf("Librarian %s removed successfully", res.Name),
	})
}
