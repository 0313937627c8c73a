package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCredentialRequired(t *testing.T) {
	router := gin.New()
	router.Use(CredentialRequired())
	router.GET("/", func(c *gin.Context) {})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credential, got %d", resp.Code)
	}

	var stored string
	router = gin.New()
	router.Use(CredentialRequired())
	router.GET("/", func(c *gin.Context) {
		if v, ok := c.Get(CredentialContextKey); ok {
			stored = v.(string)
		}
		c.Status(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token-abc")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if stored != "token-abc" {
		t.Fatalf("expected stored credential token-abc, got %q", stored)
	}
}

func TestExtractCredential(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
	if credential := extractCredential(c); credential != "" {
		t.Fatalf("expected empty credential, got %q", credential)
	}
	c.Request.Header.Set("Authorization", "Bearer abc")
	if credential := extractCredential(c); credential != "abc" {
		t.Fatalf("expected credential from header, got %q", credential)
	}
	c.Request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	if credential := extractCredential(c); credential != "" {
		t.Fatalf("expected non-bearer scheme to be ignored, got %q", credential)
	}
}

func TestDecompressRequest(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte("payload"))
	_ = gz.Close()

	router := gin.New()
	router.Use(DecompressRequest())
	var body string
	router.POST("/", func(c *gin.Context) {
		data, _ := io.ReadAll(c.Request.Body)
		body = string(data)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", io.NopCloser(bytes.NewReader(buf.Bytes())))
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if body != "payload" {
		t.Fatalf("expected decompressed payload, got %q", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", io.NopCloser(bytes.NewReader([]byte("plain"))))
	resp = httptest.NewRecorder()
	body = ""
	router.ServeHTTP(resp, req)
	if body != "plain" {
		t.Fatalf("expected plain body, got %q", body)
	}
}

func TestRequestLogger(t *testing.T) {
	var logged bool
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey && a.Value.Any() == slog.LevelInfo {
			logged = true
		}
		return a
	}})
	logger := slog.New(handler)

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if !logged {
		t.Fatalf("expected request to be logged")
	}
}
