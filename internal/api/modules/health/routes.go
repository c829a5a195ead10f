package health

import (
	"context"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a backing dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// RegisterRoutes registers the routes for the health module. A nil pinger
// reports healthy unconditionally
func RegisterRoutes(g *gin.RouterGroup, pinger Pinger) {
	g.GET("/health", getStatus(pinger))
}
