package states

import (
	"github.com/gin-gonic/gin"
)

// Register routes for the states module. Guards, when given, run before the
// mutating fun fact routes only
func RegisterRoutes(g *gin.RouterGroup, service *StatesService, guards ...gin.HandlerFunc) {
	ctl := NewController(service)

	// Create base group for state routes
	group := g.Group("/states")

	// Read routes
	group.GET("", ctl.GetStates)                      // All states, optional ?contig=true|false
	group.GET("/:state", ctl.GetState)                // Single state with fun facts
	group.GET("/:state/funfact", ctl.GetFunFact)      // Random fun fact
	group.GET("/:state/capital", ctl.GetCapital)      // Capital city
	group.GET("/:state/nickname", ctl.GetNickname)    // Nickname
	group.GET("/:state/population", ctl.GetPopulation) // Formatted population
	group.GET("/:state/admission", ctl.GetAdmission)  // Admission date

	// Fun fact mutation routes
	writes := group.Group("", guards...)
	writes.POST("/:state/funfact", ctl.AddFunFacts)
	writes.PATCH("/:state/funfact", ctl.UpdateFunFact)
	writes.DELETE("/:state/funfact", ctl.DeleteFunFact)
}
