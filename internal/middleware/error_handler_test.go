package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	return r
}

func TestErrorHandler_NoDuplicaRespuestaEscrita(t *testing.T) {
	// A handler that attaches the error and writes its own message must reach
	// the client as exactly one JSON object.
	r := newEngine()
	r.POST("/ventas", func(c *gin.Context) {
		_ = c.Error(errors.New("disk I/O error"))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error al guardar la venta"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ventas", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body must be a single JSON object: %s", w.Body.String())
	assert.Equal(t, "Error al guardar la venta", body["detail"])
}

func TestErrorHandler_EscribeEnvelopeCuandoNadieRespondio(t *testing.T) {
	r := newEngine()
	r.GET("/silencioso", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/silencioso", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Error interno del servidor", body["detail"])
}
