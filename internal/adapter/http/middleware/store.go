package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/n-smith-public/cs4241e25-final-project/pkg/apierrors"
)

// RequireStore answers 503 until ready reports true.
func RequireStore(ready func() bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ready != nil && !ready() {
			lang := GetLang(c)
			c.AbortWithStatusJSON(
				http.StatusServiceUnavailable,
				apierrors.CreateError(http.StatusServiceUnavailable, apierrors.MsgStoreUnavailable, lang),
			)
			return
		}
		c.Next()
	}
}
