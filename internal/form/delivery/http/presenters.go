package http

import (
	"errors"
	"strings"

	"time-calculator/internal/calculation"
	"time-calculator/internal/form"
)

// --- Request DTOs ---

type setFieldReq struct {
	Field form.FieldID `json:"-"`
	Value string       `json:"value"`
}

func (r setFieldReq) validate() error {
	if r.Field == "" {
		return errors.New("field is required")
	}
	return nil
}

type setUnitReq struct {
	Unit string `json:"unit" binding:"required"`
}

func (r setUnitReq) validate() error {
	if strings.TrimSpace(r.Unit) == "" {
		return errors.New("unit is required")
	}
	return nil
}

type setUseStartDateReq struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (r setUseStartDateReq) validate() error { return nil }

// --- Response DTOs ---

type fieldResp struct {
	Value           string `json:"value"`
	Required        bool   `json:"required"`
	Valid           bool   `json:"valid"`
	ErrorMessage    string `json:"error_message,omitempty"`
	Classification  string `json:"classification,omitempty"`
	AriaInvalid     bool   `json:"aria_invalid"`
	AriaDescribedBy string `json:"aria_describedby,omitempty"`
}

func newFieldResp(s form.FieldState) fieldResp {
	return fieldResp{
		Value:           s.RawValue,
		Required:        s.Required,
		Valid:           s.IsValid(),
		ErrorMessage:    s.ErrorMessage,
		Classification:  string(s.Classification),
		AriaInvalid:     s.AriaInvalid,
		AriaDescribedBy: s.AriaDescribedBy,
	}
}

type submitResp struct {
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
	Busy    bool   `json:"busy"`
}

type resultResp struct {
	Kind  string   `json:"kind,omitempty"`
	Lines []string `json:"lines"`
	Text  string   `json:"text"`
}

func newResultResp(r form.ResultArea) resultResp {
	lines := r.Lines
	if lines == nil {
		lines = []string{}
	}
	return resultResp{Kind: string(r.Kind), Lines: lines, Text: r.Text()}
}

type viewResp struct {
	Fields       map[string]fieldResp `json:"fields"`
	Unit         string               `json:"unit"`
	UseStartDate bool                 `json:"use_start_date"`
	Submit       submitResp           `json:"submit"`
	Result       resultResp           `json:"result"`
}

func newViewResp(v form.View) viewResp {
	fields := make(map[string]fieldResp, len(v.Fields))
	for id, s := range v.Fields {
		fields[string(id)] = newFieldResp(s)
	}
	return viewResp{
		Fields:       fields,
		Unit:         string(v.Unit),
		UseStartDate: v.UseStartDate,
		Submit: submitResp{
			Label:   v.Submit.Label,
			Enabled: v.Submit.Enabled,
			Busy:    v.Submit.Busy,
		},
		Result: newResultResp(v.Result),
	}
}

type submitOutcomeResp struct {
	Outcome   string   `json:"outcome"`
	Lines     []string `json:"lines"`
	Persisted bool     `json:"persisted"`
	View      viewResp `json:"view"`
}

func outcomeName(k calculation.OutcomeKind) string {
	switch k {
	case calculation.OutcomeSuccess:
		return "success"
	case calculation.OutcomeFailure:
		return "failure"
	}
	return "invalid"
}

func newSubmitOutcomeResp(out calculation.Outcome, v form.View) submitOutcomeResp {
	return submitOutcomeResp{
		Outcome:   outcomeName(out.Kind),
		Lines:     out.Lines,
		Persisted: out.Persisted,
		View:      newViewResp(v),
	}
}
