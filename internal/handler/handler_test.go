package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "http error", err: usecase.NewHTTPError(http.StatusNotFound, "product not found"), wantCode: http.StatusNotFound, wantBody: `{"error":"product not found"}`},
		{name: "wrapped", err: errors.Join(errors.New("ctx"), usecase.NewHTTPError(http.StatusConflict, "dup")), wantCode: http.StatusConflict, wantBody: `{"error":"dup"}`},
		{name: "plain", err: errors.New("db is on fire"), wantCode: http.StatusInternalServerError, wantBody: `{"error":"internal error"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, writeError(c, tt.err))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestListInputFromQuery(t *testing.T) {
	e := echo.New()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/products?category=rosas&q=ramo&featured=true&limit=4", nil), httptest.NewRecorder())
	in, err := listInputFromQuery(c)
	require.NoError(t, err)
	assert.Equal(t, "rosas", in.Category)
	assert.Equal(t, "ramo", in.Q)
	require.NotNil(t, in.Featured)
	assert.True(t, *in.Featured)
	assert.Equal(t, 4, in.Limit)

	for _, q := range []string{"featured=maybe", "limit=ten"} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/products?"+q, nil), httptest.NewRecorder())
		_, err := listInputFromQuery(c)
		he, ok := usecase.AsHTTPError(err)
		require.True(t, ok, q)
		assert.Equal(t, http.StatusBadRequest, he.Status)
	}
}
