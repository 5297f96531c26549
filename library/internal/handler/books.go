package handler

import (
	"fmt"
	"net/http"

	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) AvailableBooks(c echo.Context) error {
	books, err := h.librarySvc.AvailableBooks(c.Request().Context())
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) BookEnquiry(c echo.Context) error {
	res, err := h.librarySvc.BookEnquiry(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) AddBook(c echo.Context) error {
	var req model.AddBookRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	book, err := h.librarySvc.AddBook(c.Request().Context(), identity(c), req)
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	book, err := h.librarySvc.DeleteBook(c.Request().Context(), identity(c), c.Param("bookId"))
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, model.Message{
		Message: fmt.Sprintf("Book %s deleted successfully", book.BookID),
	})
}

func (h *Handler) IssuedBooks(c echo.Context) error {
	res, err := h.librarySvc.IssuedBooks(c.Request().Context(), identity(c))
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) MissingBooks(c echo.Context) error {
	res, err := h.librarySvc.MissingBooks(c.Request().Context(), identity(c))
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) StudentBooks(c echo.Context) error {
	res, err := h.librarySvc.StudentBooks(c.Request().Context(), identity(c), c.Param("studentId"))
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) AllStudentBooks(c echo.Context) error {
	res, err := h.librarySvc.AllStudentBooks(c.Request().Context(), identity(c))
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}
