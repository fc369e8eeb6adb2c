package http

import (
	"github.com/gin-gonic/gin"

	"time-calculator/internal/form"
)

func (h *handler) processSetFieldReq(c *gin.Context) (setFieldReq, error) {
	var req setFieldReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Field = form.FieldID(c.Param("field"))
	return req, req.validate()
}

func (h *handler) processSetUnitReq(c *gin.Context) (setUnitReq, error) {
	var req setUnitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processSetUseStartDateReq(c *gin.Context) (setUseStartDateReq, error) {
	var req setUseStartDateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
