package http

import (
	"github.com/gin-gonic/gin"

	"time-calculator/pkg/response"
)

// List godoc
// @Summary     List presets
// @Tags        Presets
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/presets [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	presets, err := h.uc.ListPresets(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListPresets: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListResp(presets))
}

// Save godoc
// @Summary     Save the form as a preset
// @Description Stores the current form under name. An existing preset is only replaced when overwrite is true.
// @Tags        Presets
// @Accept      json
// @Produce     json
// @Param       body body saveReq true "Preset name"
// @Success     200 {object} saveResp
// @Failure     400 {object} response.Resp "Empty name or incomplete form"
// @Router      /api/v1/presets [POST]
func (h *handler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.SavePreset(ctx, req.Name, answer(req.Overwrite))
	if err != nil {
		h.l.Warnf(ctx, "uc.SavePreset: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSaveResp(out))
}

// Load godoc
// @Summary     Load a preset into the form
// @Tags        Presets
// @Produce     json
// @Param       name path string true "Preset name"
// @Success     200 {object} presetResp
// @Failure     404 {object} response.Resp "Preset not found"
// @Router      /api/v1/presets/{name}/load [POST]
func (h *handler) Load(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.uc.LoadPreset(ctx, c.Param("name"))
	if err != nil {
		h.l.Warnf(ctx, "uc.LoadPreset: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newPresetResp(p))
}

// Delete godoc
// @Summary     Delete a preset
// @Description Deletes the preset only when confirm=true; otherwise nothing changes.
// @Tags        Presets
// @Produce     json
// @Param       name    path  string true  "Preset name"
// @Param       confirm query bool   false "Confirm deletion"
// @Success     200 {object} deleteResp
// @Failure     404 {object} response.Resp "Preset not found"
// @Router      /api/v1/presets/{name} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDeleteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.DeletePreset(ctx, req.Name, answer(req.Confirm))
	if err != nil {
		h.l.Warnf(ctx, "uc.DeletePreset: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newDeleteResp(req.Name, out))
}
