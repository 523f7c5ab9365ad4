package httpapi

import (
	"net/http"
	"strings"

	"github.com/QuangTung97/donation-ledger/pkg/otellib"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const callerUserIDKey = "caller_user_id"

const bearerPrefix = "Bearer "

// RequireOperator rejects requests without a valid bearer token with 401
func RequireOperator(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			abortWithError(c, http.StatusUnauthorized, "missing bearer token")
			return
		}

		userID, err := verifier.Verify(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			otellib.Extract(c.Request.Context()).Info("Bearer token rejected", zap.Error(err))
			abortWithError(c, http.StatusUnauthorized, "invalid token")
			return
		}

		c.Set(callerUserIDKey, userID)
		c.Next()
	}
}

func callerUserID(c *gin.Context) string {
	return c.GetString(callerUserIDKey)
}
