package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	calcUC "time-calculator/internal/calculation/usecase"
	"time-calculator/internal/echo"
	"time-calculator/internal/form"
	formUC "time-calculator/internal/form/usecase"
	"time-calculator/internal/model"
	"time-calculator/internal/preset"
	presetHTTP "time-calculator/internal/preset/delivery/http"
	"time-calculator/internal/preset/repository/kv"
	presetUC "time-calculator/internal/preset/usecase"
	"time-calculator/internal/storage/memory"
	"time-calculator/pkg/datemath"
	"time-calculator/pkg/log"
)

type noCalculator struct{}

func (noCalculator) Calculate(ctx context.Context, p model.RequestPayload) (*model.CalculationResult, error) {
	return nil, nil
}

func setup(t *testing.T) (*gin.Engine, form.UseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	store := memory.New()
	e := echo.New(l, store)
	f := form.New()
	clock, _ := datemath.NewClock("UTC")
	uc := formUC.New(l, f, presetUC.New(l, kv.New(l, store)), calcUC.New(l, f, noCalculator{}, e), e, clock)

	r := gin.New()
	presetHTTP.RegisterRoutes(r.Group("/api/v1/presets"), presetHTTP.New(l, uc))
	return r, uc
}

func call(r *gin.Engine, method, path string, body any) (int, map[string]any) {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env map[string]any
	json.Unmarshal(w.Body.Bytes(), &env)
	return w.Code, env
}

func data(env map[string]any) map[string]any {
	d, _ := env["data"].(map[string]any)
	return d
}

func TestPresetEndpoints(t *testing.T) {
	ctx := context.Background()
	r, uc := setup(t)

	t.Run("Save Incomplete", func(t *testing.T) {
		code, env := call(r, http.MethodPost, "/api/v1/presets", map[string]any{"name": "a"})
		if code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", code)
		}
		if env["message"] != "Initial time and duration value must be filled to save a preset." {
			t.Errorf("unexpected message %v", env["message"])
		}
	})

	uc.SetField(ctx, form.FieldInitialTime, "8:00 AM")
	uc.SetField(ctx, form.FieldDurationValue, "2")
	uc.SetUnit(ctx, "hours")

	t.Run("Save Empty Name", func(t *testing.T) {
		code, env := call(r, http.MethodPost, "/api/v1/presets", map[string]any{"name": "  "})
		if code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", code)
		}
		if env["message"] != preset.MessageEmptyName {
			t.Errorf("unexpected message %v", env["message"])
		}
		presets, _ := uc.ListPresets(ctx)
		if len(presets) != 0 {
			t.Errorf("blank name saved: %+v", presets)
		}
	})

	t.Run("Save", func(t *testing.T) {
		code, env := call(r, http.MethodPost, "/api/v1/presets", map[string]any{"name": "work"})
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		if d := data(env); d["replaced"] != false || d["cancelled"] != false {
			t.Errorf("unexpected save response %v", d)
		}
	})

	t.Run("Save Existing Without Overwrite", func(t *testing.T) {
		uc.SetField(ctx, form.FieldDurationValue, "3")
		_, env := call(r, http.MethodPost, "/api/v1/presets", map[string]any{"name": "work"})
		if d := data(env); d["cancelled"] != true {
			t.Errorf("expected cancelled, got %v", d)
		}
		p, _ := uc.LoadPreset(ctx, "work")
		if p.DurationMagnitude != "2" {
			t.Errorf("preset changed without overwrite: %+v", p)
		}
	})

	t.Run("Save Existing With Overwrite", func(t *testing.T) {
		uc.SetField(ctx, form.FieldDurationValue, "3")
		_, env := call(r, http.MethodPost, "/api/v1/presets", map[string]any{"name": "work", "overwrite": true})
		if d := data(env); d["replaced"] != true {
			t.Errorf("expected replaced, got %v", d)
		}
	})

	t.Run("List", func(t *testing.T) {
		_, env := call(r, http.MethodGet, "/api/v1/presets", nil)
		if d := data(env); d["count"] != float64(1) {
			t.Errorf("unexpected list %v", d)
		}
	})

	t.Run("Load", func(t *testing.T) {
		uc.Clear(ctx)
		code, env := call(r, http.MethodPost, "/api/v1/presets/work/load", nil)
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		if d := data(env); d["duration_value"] != "3" {
			t.Errorf("unexpected preset %v", d)
		}
		if uc.View(ctx).Result.Text() != form.MessagePresetLoaded {
			t.Error("form should announce the loaded preset")
		}

		code, _ = call(r, http.MethodPost, "/api/v1/presets/nope/load", nil)
		if code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", code)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		_, env := call(r, http.MethodDelete, "/api/v1/presets/work", nil)
		if d := data(env); d["cancelled"] != true {
			t.Errorf("delete without confirm must be cancelled: %v", d)
		}

		code, env := call(r, http.MethodDelete, "/api/v1/presets/work?confirm=true", nil)
		if code != http.StatusOK || data(env)["deleted"] != true {
			t.Errorf("expected deletion, got %d %v", code, env)
		}

		code, _ = call(r, http.MethodDelete, "/api/v1/presets/work?confirm=true", nil)
		if code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", code)
		}
	})
}
