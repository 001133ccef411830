package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"villa_api/internal/db"
	"villa_api/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// envelope mirrors dto.APIResponse with a raw result for per-test decoding
type envelope struct {
	StatusCode    int             `json:"statusCode"`
	IsSuccess     bool            `json:"isSuccess"`
	ErrorMessages []string        `json:"errorMessages"`
	Result        json.RawMessage `json:"result"`
}

// newTestServer builds the full route tree over a seeded in-memory database.
// Redis is nil, which disables caching.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(gdb))
	require.NoError(t, db.Seed(gdb))

	r := gin.New()
	SetupRoutes(r, Deps{
		Villas:       repository.NewVillaRepository(gdb),
		VillaNumbers: repository.NewVillaNumberRepository(gdb),
		Users:        repository.NewUserRepository(gdb, testSecret, ""),
		Redis:        nil,
		JWTSecret:    testSecret,
	})
	return r, gdb
}

// doJSON performs a request with an optional JSON body and bearer token
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doRaw performs a request with a raw body, used for patch documents
func doRaw(t *testing.T, r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeEnvelope parses the uniform response envelope
func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// decodeResult parses the envelope's payload into dest
func decodeResult(t *testing.T, w *httptest.ResponseRecorder, dest any) envelope {
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Result, dest))
	return env
}
