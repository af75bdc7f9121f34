package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evmwatch/blockfilter/config"
	"github.com/evmwatch/blockfilter/model"
)

const APIKey = "apikey"

// CheckAPIKey guards the api group when an api key is configured. An unset
// key leaves the endpoints open, matching the stdin surface.
func CheckAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.Conf.HTTPServer.APIKey == "" {
			c.Next()
			return
		}
		if c.Query(APIKey) != config.Conf.HTTPServer.APIKey {
			c.AbortWithStatusJSON(http.StatusOK, model.Message{
				Code: http.StatusUnauthorized,
				Msg:  "invalid api key",
			})
			return
		}
		c.Next()
	}
}
