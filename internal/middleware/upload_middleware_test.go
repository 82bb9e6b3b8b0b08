package middleware

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialink/internal/services"
)

func uploadRouter(t *testing.T, dir string) (*gin.Engine, *string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := services.NewUploadService(dir)
	require.NoError(t, err)

	var seen string
	router := gin.New()
	router.POST("/upload", UploadMiddleware(svc), func(c *gin.Context) {
		seen = PicturePath(c)
		c.Status(http.StatusOK)
	})
	return router, &seen
}

func TestUploadMiddleware(t *testing.T) {
	t.Run("stores the picture field and exposes the filename", func(t *testing.T) {
		dir := t.TempDir()
		router, seen := uploadRouter(t, dir)

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		part, err := w.CreateFormFile("picture", "avatar.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		rec := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/upload", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "avatar.png", *seen)

		data, err := os.ReadFile(filepath.Join(dir, "avatar.png"))
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), data)
	})

	t.Run("missing field is not an error", func(t *testing.T) {
		router, seen := uploadRouter(t, t.TempDir())

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("description", "no picture"))
		require.NoError(t, w.Close())

		rec := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/upload", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, *seen)
	})
}
