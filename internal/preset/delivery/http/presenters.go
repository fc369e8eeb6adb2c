package http

import (
	"net/http"
	"strings"

	"time-calculator/internal/model"
	"time-calculator/internal/preset"
	"time-calculator/pkg/response"
)

// --- Request DTOs ---

type saveReq struct {
	Name string `json:"name"`
	// Overwrite answers the overwrite question in advance.
	Overwrite bool `json:"overwrite"`
}

func (r saveReq) validate() error {
	return validateName(r.Name)
}

type deleteReq struct {
	Name    string `form:"-"`
	Confirm bool   `form:"confirm"`
}

func (r deleteReq) validate() error {
	return validateName(r.Name)
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return response.NewHTTPError(http.StatusBadRequest, preset.MessageEmptyName)
	}
	return nil
}

func answer(yes bool) preset.Confirmer {
	if yes {
		return preset.Always
	}
	return preset.Never
}

// --- Response DTOs ---

type presetResp struct {
	Name          string `json:"name"`
	InitialTime   string `json:"initial_time"`
	DurationValue string `json:"duration_value"`
	DurationUnit  string `json:"duration_unit"`
	UseStartDate  bool   `json:"use_start_date"`
	StartDate     string `json:"start_date,omitempty"`
}

func newPresetResp(p model.Preset) presetResp {
	return presetResp{
		Name:          p.Name,
		InitialTime:   p.InitialTime,
		DurationValue: p.DurationMagnitude,
		DurationUnit:  string(p.DurationUnit),
		UseStartDate:  p.UseStartDate,
		StartDate:     p.StartDate,
	}
}

type listResp struct {
	Presets []presetResp `json:"presets"`
	Count   int          `json:"count"`
}

func newListResp(presets []model.Preset) listResp {
	out := make([]presetResp, len(presets))
	for i, p := range presets {
		out[i] = newPresetResp(p)
	}
	return listResp{Presets: out, Count: len(out)}
}

type saveResp struct {
	Preset    presetResp `json:"preset"`
	Replaced  bool       `json:"replaced"`
	Cancelled bool       `json:"cancelled"`
	Message   string     `json:"message,omitempty"`
}

func newSaveResp(out preset.SaveOutput) saveResp {
	resp := saveResp{
		Preset:    newPresetResp(out.Preset),
		Replaced:  out.Replaced,
		Cancelled: out.Cancelled,
	}
	if out.Cancelled {
		resp.Message = preset.OverwritePrompt(out.Preset.Name)
	}
	return resp
}

type deleteResp struct {
	Name      string `json:"name"`
	Deleted   bool   `json:"deleted"`
	Cancelled bool   `json:"cancelled"`
	Message   string `json:"message,omitempty"`
}

func newDeleteResp(name string, out preset.DeleteOutput) deleteResp {
	resp := deleteResp{Name: name, Deleted: !out.Cancelled, Cancelled: out.Cancelled}
	if out.Cancelled {
		resp.Message = preset.DeletePrompt(name)
	}
	return resp
}
