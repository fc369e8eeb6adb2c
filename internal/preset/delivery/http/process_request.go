package http

import "github.com/gin-gonic/gin"

func (h *handler) processSaveReq(c *gin.Context) (saveReq, error) {
	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processDeleteReq(c *gin.Context) (deleteReq, error) {
	var req deleteReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.Name = c.Param("name")
	return req, req.validate()
}
