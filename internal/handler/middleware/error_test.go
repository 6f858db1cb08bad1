//go:build unit

package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"court-booking/internal/handler/httperr"
	"court-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performGet(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAbortWithErrorWritesFlatBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.GET("/conflict", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errors.New("slot taken"),
			"Requested slots are no longer available",
			gin.H{"conflicts": []gin.H{{"kind": "reservation"}}})
	})

	w := performGet(t, router, "/conflict")

	assert.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Requested slots are no longer available", body["error"])
	assert.NotEmpty(t, body["conflicts"])
}

func TestErrorHandlerRendersRecordedFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	// A handler that records the failure but never writes a body.
	router.GET("/silent", func(c *gin.Context) {
		_ = c.Error(&gin.Error{
			Err:  errors.New("backing store down"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.Response{
				Status: http.StatusServiceUnavailable,
				Body:   gin.H{"error": "Reservation store unavailable"},
			},
		})
	})

	w := performGet(t, router, "/silent")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Reservation store unavailable", decodeBody(t, w)["error"])
}

func TestErrorHandlerFallsBackToInternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.GET("/unrendered", func(c *gin.Context) {
		_ = c.Error(errors.New("unclassified failure"))
	})

	w := performGet(t, router, "/unrendered")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decodeBody(t, w)["error"])
}
