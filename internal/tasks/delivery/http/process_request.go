package http

import (
	"github.com/gin-gonic/gin"
)

// processAnalyzeReq binds the analyze request body.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSuggestReq binds the suggest request body.
func (h *handler) processSuggestReq(c *gin.Context) (suggestReq, error) {
	var req suggestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
