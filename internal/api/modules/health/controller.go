package health

import (
	"log"
	"net/http"

	"github.com/ethanbaker/states-api/pkg/sdk"
	"github.com/gin-gonic/gin"
)

// Return status of the API and its store
func getStatus(pinger Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pinger != nil {
			if err := pinger.Ping(c.Request.Context()); err != nil {
				log.Printf("[HEALTH]: Store ping failed: %v", err)
				c.JSON(sdk.NewErrorResponse(http.StatusServiceUnavailable, "Store unavailable", nil).AsGinResponse())
				return
			}
		}

		c.JSON(sdk.NewSuccessResponse[any]("OK", nil).AsGinResponse())
	}
}
