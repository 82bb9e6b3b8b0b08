package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialink/internal/services"
	"socialink/internal/transport/httpdto"
)

// PicturePathKey is the gin context key under which the stored filename of an
// uploaded picture is exposed to the downstream handler.
const PicturePathKey = "picturePath"

// UploadMiddleware stores the optional "picture" multipart field to disk and
// passes the stored filename forward. A request without the field proceeds
// with no picture reference; only an actual write failure short-circuits.
func UploadMiddleware(service *services.UploadService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile("picture")
		if err != nil {
			// field absent: the picture is optional downstream
			c.Next()
			return
		}

		name, err := service.Save(fh)
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(err.Error(), "UPLOAD_FAILED"))
			c.Abort()
			return
		}

		c.Set(PicturePathKey, name)
		c.Next()
	}
}

// PicturePath returns the filename stored by UploadMiddleware, if any.
func PicturePath(c *gin.Context) string {
	value, ok := c.Get(PicturePathKey)
	if !ok {
		return ""
	}
	name, _ := value.(string)
	return name
}
