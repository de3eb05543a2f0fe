package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DecompressRequest replaces a gzip-encoded request body with its plain
// form before the handler binds it. A body that claims gzip but is not
// aborts with 400.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Content-Encoding"), "gzip") {
			c.Next()
			return
		}

		compressed := c.Request.Body
		plain, err := gzip.NewReader(compressed)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		defer plain.Close()
		defer compressed.Close()

		c.Request.Body = io.NopCloser(plain)
		c.Request.Header.Del("Content-Encoding")
		c.Next()
	}
}
