package httpserver_test

import (
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
	"time-calculator/internal/httpserver"
	"time-calculator/internal/middleware"
	"time-calculator/internal/model"
	"time-calculator/internal/preset/repository/kv"
	presetUC "time-calculator/internal/preset/usecase"
	"time-calculator/internal/storage/memory"
	"time-calculator/pkg/datemath"
	"time-calculator/pkg/log"
	"time-calculator/pkg/response"
)

type echoCalculator struct{}

func (echoCalculator) Calculate(ctx context.Context, p model.RequestPayload) (*model.CalculationResult, error) {
	return &model.CalculationResult{ResultString: p.Duration}, nil
}

func newFormUC() form.UseCase {
	l := log.NewNop()
	store := memory.New()
	e := echo.New(l, store)
	f := form.New()
	clock, _ := datemath.NewClock("UTC")
	return formUC.New(l, f, presetUC.New(l, kv.New(l, store)), calcUC.New(l, f, echoCalculator{}, e), e, clock)
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  httpserver.Config
	}{
		{name: "No Port", cfg: httpserver.Config{Mode: gin.TestMode, FormUseCase: newFormUC(), SubmitPerMin: 1}},
		{name: "No Mode", cfg: httpserver.Config{Port: 1, FormUseCase: newFormUC(), SubmitPerMin: 1}},
		{name: "No Form", cfg: httpserver.Config{Port: 1, Mode: gin.TestMode, SubmitPerMin: 1}},
		{name: "No Rate", cfg: httpserver.Config{Port: 1, Mode: gin.TestMode, FormUseCase: newFormUC()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := httpserver.New(log.NewNop(), tt.cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	srv, err := httpserver.New(log.NewNop(), httpserver.Config{
		Port:         8090,
		Mode:         gin.TestMode,
		Environment:  "test",
		FormUseCase:  newFormUC(),
		SubmitPerMin: 60,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h := srv.Handler()

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusOK {
				t.Errorf("expected 200, got %d", w.Code)
			}
			if w.Header().Get(middleware.RequestIDHeader) == "" {
				t.Error("missing request id header")
			}
		})
	}

	t.Run("Ready Body", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		var resp struct {
			Data struct {
				Status      string `json:"status"`
				Service     string `json:"service"`
				Environment string `json:"environment"`
				Submitting  bool   `json:"submitting"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Data.Status != "ready" || resp.Data.Service != httpserver.ServiceName || resp.Data.Environment != "test" {
			t.Errorf("unexpected probe %+v", resp.Data)
		}
		if resp.Data.Submitting {
			t.Error("idle form reported as submitting")
		}
	})

	t.Run("Form And Presets Mounted", func(t *testing.T) {
		for _, path := range []string{"/api/v1/form", "/api/v1/presets", "/api/v1/form/result"} {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusOK {
				t.Errorf("%s: expected 200, got %d", path, w.Code)
			}
			var resp response.Resp
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.ErrorCode != 0 {
				t.Errorf("%s: unexpected body %s", path, w.Body.String())
			}
		}
	})
}

func TestRunStopsOnCancel(t *testing.T) {
	srv, err := httpserver.New(log.NewNop(), httpserver.Config{
		Port:         18093,
		Mode:         gin.TestMode,
		FormUseCase:  newFormUC(),
		SubmitPerMin: 60,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	cancel()

	if err := <-done; err != nil {
		t.Errorf("Run returned %v", err)
	}
}
