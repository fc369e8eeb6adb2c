package http

import (
	"github.com/gin-gonic/gin"

	"time-calculator/pkg/response"
)

// View godoc
// @Summary     Get the form
// @Description Returns every field with its validation state, the submit control and the result area.
// @Tags        Form
// @Produce     json
// @Success     200 {object} viewResp
// @Router      /api/v1/form [GET]
func (h *handler) View(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, newViewResp(h.uc.View(ctx)))
}

// SetField godoc
// @Summary     Edit a field
// @Description Sets initial_time, duration_value or start_date and re-validates it.
// @Tags        Form
// @Accept      json
// @Produce     json
// @Param       field path string      true "Field id"
// @Param       body  body setFieldReq true "New value"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Unknown field"
// @Router      /api/v1/form/fields/{field} [PUT]
func (h *handler) SetField(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetFieldReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if _, err := h.uc.SetField(ctx, req.Field, req.Value); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newViewResp(h.uc.View(ctx)))
}

// SetUnit godoc
// @Summary     Select the duration unit
// @Tags        Form
// @Accept      json
// @Produce     json
// @Param       body body setUnitReq true "seconds, minutes, hours or days"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Unknown unit"
// @Router      /api/v1/form/unit [PUT]
func (h *handler) SetUnit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetUnitReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.SetUnit(ctx, req.Unit); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newViewResp(h.uc.View(ctx)))
}

// SetUseStartDate godoc
// @Summary     Toggle the start date
// @Tags        Form
// @Accept      json
// @Produce     json
// @Param       body body setUseStartDateReq true "Toggle state"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/form/start-date [PUT]
func (h *handler) SetUseStartDate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetUseStartDateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.uc.SetUseStartDate(ctx, *req.Enabled)
	response.OK(c, newViewResp(h.uc.View(ctx)))
}

// SetNow godoc
// @Summary     Set the initial time to now
// @Tags        Form
// @Produce     json
// @Success     200 {object} viewResp
// @Router      /api/v1/form/now [POST]
func (h *handler) SetNow(c *gin.Context) {
	ctx := c.Request.Context()
	h.uc.SetNow(ctx)
	response.OK(c, newViewResp(h.uc.View(ctx)))
}

// Clear godoc
// @Summary     Clear the form
// @Description Resets every field and forgets the stored inputs. Presets are kept.
// @Tags        Form
// @Produce     json
// @Success     200 {object} viewResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/form/clear [POST]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Clear(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newViewResp(h.uc.View(ctx)))
}

// Submit godoc
// @Summary     Calculate
// @Description Validates the form and sends it to the calculation service.
// @Tags        Form
// @Produce     json
// @Success     200 {object} submitOutcomeResp
// @Failure     409 {object} response.Resp "A calculation is already in progress"
// @Failure     422 {object} response.Resp "Invalid fields"
// @Failure     429 {object} response.Resp "Too many requests"
// @Router      /api/v1/form/submit [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Submit(ctx)
	if err != nil {
		h.l.Warnf(ctx, "uc.Submit: %v", err)
		response.Error(c, h.mapError(err), map[string]interface{}{
			"view": newViewResp(h.uc.View(ctx)),
		})
		return
	}

	response.OK(c, newSubmitOutcomeResp(out, h.uc.View(ctx)))
}

// Result godoc
// @Summary     Get the result area
// @Description Returns what the copy-result control would copy.
// @Tags        Form
// @Produce     json
// @Success     200 {object} resultResp
// @Router      /api/v1/form/result [GET]
func (h *handler) Result(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, newResultResp(h.uc.View(ctx).Result))
}
