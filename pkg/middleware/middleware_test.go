package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/library-management/pkg/auth"
	md "github.com/Astemirdum/library-management/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestJwtAuthentication(t *testing.T) {
	t.Parallel()
	tokens := auth.NewTokenManager(auth.Config{Secret: "secret", TTL: time.Hour})
	valid, _, err := tokens.Issue("S001", auth.RoleStudent)
	require.NoError(t, err)

	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "ok",
			header:       "Bearer " + valid,
			expectedCode: http.StatusOK,
			expectedBody: `{"subject":"S001","role":"student"}`,
		},
		{
			name:         "no header",
			header:       "",
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"No Authorization Header"}`,
		},
		{
			name:         "not bearer",
			header:       "Basic abc",
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"Invalid Authorization Header"}`,
		},
		{
			name:         "bad token",
			header:       "Bearer abc.def.ghi",
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"JwtAccessDenied"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.GET("/me", func(c echo.Context) error {
				return c.JSON(http.StatusOK, auth.FromContext(c.Request().Context()))
			}, md.JwtAuthentication(tokens))

			r := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
			if tt.header != "" {
				r.Header.Set(md.AuthorizationHeader, tt.header)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestRequireAction(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		id           *auth.Identity
		expectedCode int
	}{
		{name: "admin", id: &auth.Identity{Subject: "admin", Role: auth.RoleAdmin}, expectedCode: http.StatusCreated},
		{name: "staff", id: &auth.Identity{Subject: "staff", Role: auth.RoleStaff}, expectedCode: http.StatusForbidden},
		{name: "student", id: &auth.Identity{Subject: "S001", Role: auth.RoleStudent}, expectedCode: http.StatusForbidden},
		{name: "anonymous", expectedCode: http.StatusForbidden},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.POST("/members", func(c echo.Context) error {
				return c.NoContent(http.StatusCreated)
			}, md.RequireAction(auth.ActionRegisterMember))

			r := httptest.NewRequest(http.MethodPost, "/members", strings.NewReader(`{}`))
			if tt.id != nil {
				r = r.WithContext(auth.SetAuthContext(r.Context(), tt.id.Subject, tt.id.Role))
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
