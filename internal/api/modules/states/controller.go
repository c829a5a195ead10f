package states

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/ethanbaker/states-api/pkg/sdk"
	"github.com/gin-gonic/gin"
)

// Controller exposes the states service over HTTP
type Controller struct {
	service *StatesService
}

// NewController creates a controller for the given service
func NewController(service *StatesService) *Controller {
	return &Controller{service: service}
}

// GetStates handles GET requests for the full (optionally filtered) state list
func (ctl *Controller) GetStates(c *gin.Context) {
	states, err := ctl.service.ListStates(c.Request.Context(), c.Query("contig"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, states)
}

// GetState handles GET requests for a single state
func (ctl *Controller) GetState(c *gin.Context) {
	state, err := ctl.service.GetState(c.Request.Context(), c.Param("state"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// GetFunFact handles GET requests for a random fun fact
func (ctl *Controller) GetFunFact(c *gin.Context) {
	fact, err := ctl.service.GetRandomFunFact(c.Request.Context(), c.Param("state"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, fact)
}

// GetCapital handles GET requests for a state's capital
func (ctl *Controller) GetCapital(c *gin.Context) {
	resp, err := ctl.service.GetCapital(c.Param("state"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetNickname handles GET requests for a state's nickname
func (ctl *Controller) GetNickname(c *gin.Context) {
	resp, err := ctl.service.GetNickname(c.Param("state"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPopulation handles GET requests for a state's population
func (ctl *Controller) GetPopulation(c *gin.Context) {
	resp, err := ctl.service.GetPopulation(c.Param("state"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAdmission handles GET requests for a state's admission date
func (ctl *Controller) GetAdmission(c *gin.Context) {
	resp, err := ctl.service.GetAdmission(c.Param("state"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AddFunFacts handles POST requests that append fun facts
func (ctl *Controller) AddFunFacts(c *gin.Context) {
	var req sdk.AddFunFactsRequest
	if !bindBody(c, &req) {
		return
	}

	record, err := ctl.service.AddFunFacts(c.Request.Context(), c.Param("state"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// UpdateFunFact handles PATCH requests that replace a fun fact by index
func (ctl *Controller) UpdateFunFact(c *gin.Context) {
	var req sdk.UpdateFunFactRequest
	if !bindBody(c, &req) {
		return
	}

	record, err := ctl.service.UpdateFunFact(c.Request.Context(), c.Param("state"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeleteFunFact handles DELETE requests that remove a fun fact by index
func (ctl *Controller) DeleteFunFact(c *gin.Context) {
	var req sdk.DeleteFunFactRequest
	if !bindBody(c, &req) {
		return
	}

	record, err := ctl.service.DeleteFunFact(c.Request.Context(), c.Param("state"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

/** ---- HELPERS ---- */

// bindBody parses the JSON body into req. An empty body leaves req zeroed so
// the service can report which field is missing
func bindBody(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, msgBadBody, nil).AsGinResponse())
		return false
	}
	return true
}

// respondError writes the error envelope. Unexpected errors are logged and
// reported with a generic message
func respondError(c *gin.Context, err error) {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		statusErr = internalError(err)
	}

	if statusErr.Code >= http.StatusInternalServerError {
		log.Printf("[STATES]: %s %s failed: %v", c.Request.Method, c.Request.URL.Path, statusErr.Err)
	}

	c.JSON(sdk.NewErrorResponse(statusErr.Code, statusErr.Message, nil).AsGinResponse())
}
