package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-task-planner/pkg/response"
)

// Analyze godoc
// @Summary     Analyze a task batch
// @Description Scores every task under the requested strategy and returns the batch ordered by descending score. Ties keep input order.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Strategy and task batch"
// @Success     200 {array}  scoredTaskResp
// @Failure     400 {object} response.Resp "Validation error or unsupported strategy"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/analyze/ [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analyze(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	// Contract: the 200 body is the bare ordered array, not the envelope.
	c.JSON(http.StatusOK, h.newAnalyzeResp(output))
}

// Suggest godoc
// @Summary     Suggest top tasks
// @Description Analyzes the batch and returns the top-N tasks (default 3).
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "Strategy, task batch, and optional limit"
// @Success     200 {object} response.Resp{data=suggestResp}
// @Failure     400 {object} response.Resp "Validation error or unsupported strategy"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/suggest/ [POST]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Suggest(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Suggest: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSuggestResp(output))
}
