package handler

import (
	"fmt"
	"net/http"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/pkg/auth"
	md "github.com/Astemirdum/library-management/pkg/middleware"
	"github.com/Astemirdum/library-management/pkg/validate"
	_ "github.com/Astemirdum/library-management/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	librarySvc LibraryService
	tokens     md.TokenParser
	log        *zap.Logger
}

func New(librarySvc LibraryService, tokens md.TokenParser, log *zap.Logger) *Handler {
	return &Handler{
		librarySvc: librarySvc,
		tokens:     tokens,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.HTTPErrorHandler = h.ErrorHandler
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestID(),
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/login", h.Login)
	api.GET("/books/available", h.AvailableBooks)
	api.GET("/books/:bookId/enquiry", h.BookEnquiry)
	api.POST("/presence", h.Enter)
	api.PUT("/presence", h.Exit)

	api = api.Group("", md.JwtAuthentication(h.tokens))

	api.POST("/books", h.AddBook, md.RequireAction(auth.ActionManageBooks))
	api.DELETE("/books/:bookId", h.DeleteBook, md.RequireAction(auth.ActionManageBooks))
	api.GET("/books/issued", h.IssuedBooks, md.RequireAction(auth.ActionViewIssued))
	api.GET("/books/missing", h.MissingBooks, md.RequireAction(auth.ActionViewIssued))
	api.PUT("/books/missing", h.MarkMissing, md.RequireAction(auth.ActionMarkMissing))
	api.PUT("/books/overdue", h.SweepOverdue, md.RequireAction(auth.ActionSweepOverdue))

	api.POST("/loans", h.Borrow, md.RequireAction(auth.ActionBorrow))
	api.PUT("/loans/return", h.ReturnBook)

	api.GET("/students/books", h.AllStudentBooks, md.RequireAction(auth.ActionViewAllLoans))
	api.GET("/students/:studentId/books", h.StudentBooks)

	api.GET("/fines", h.StudentsWithFines, md.RequireAction(auth.ActionViewAllFines))
	api.GET("/fines/:studentId", h.ListFines)
	api.PUT("/fines/:studentId/pay", h.PayFine, md.RequireAction(auth.ActionPayFine))

	api.GET("/members", h.ListMembers)
	api.POST("/members", h.Register, md.RequireAction(auth.ActionRegisterMember))
	api.DELETE("/members/:studentId", h.RemoveMember)

	api.GET("/librarians", h.ListLibrarians)
	api.POST("/librarians", h.AddLibrarian, md.RequireAction(auth.ActionManageLibrarians))
	api.DELETE("/librarians/:librarianId", h.RemoveLibrarian, md.RequireAction(auth.ActionManageLibrarians))

	api.GET("/presence", h.PresentStudents, md.RequireAction(auth.ActionViewPresence))

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.librarySvc.Login(c.Request().Context(), req)
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func identity(c echo.Context) auth.Identity {
	return auth.FromContext(c.Request().Context())
}

func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return echo.NewHTTPError(http.StatusBadRequest,
				errs.Response{Kind: errs.KindInvalidArgument, Message: fmt.Sprint(he.Message)})
		}
		return badRequest(err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err)
	}
	return nil
}
