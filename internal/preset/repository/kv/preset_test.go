package kv_test

import (
	"context"
	"testing"

	"time-calculator/internal/model"
	"time-calculator/internal/preset/repository/kv"
	"time-calculator/internal/storage/memory"
	pkgLog "time-calculator/pkg/log"
)

func TestLoadAll(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		stored *string
		want   int
	}{
		{name: "Missing Key", stored: nil, want: 0},
		{name: "Empty Value", stored: ptr(""), want: 0},
		{name: "Corrupt JSON", stored: ptr("{not json"), want: 0},
		{name: "Wrong Shape", stored: ptr(`{"name":"a"}`), want: 0},
		{name: "Unknown Unit", stored: ptr(`[{"name":"a","initial_time":"1:00","duration_value":"5","duration_unit":"weeks"}]`), want: 0},
		{name: "JSON Null", stored: ptr("null"), want: 0},
		{name: "Two Presets", stored: ptr(`[{"name":"a","initial_time":"1:00","duration_value":"5","duration_unit":"hours"},{"name":"b","initial_time":"2:00","duration_value":"1","duration_unit":""}]`), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.New()
			if tt.stored != nil {
				store.Set(ctx, kv.Key, *tt.stored)
			}
			repo := kv.New(pkgLog.NewNop(), store)

			got, err := repo.LoadAll(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got == nil {
				t.Fatal("expected non-nil slice")
			}
			if len(got) != tt.want {
				t.Errorf("got %d presets, want %d", len(got), tt.want)
			}
		})
	}
}

func TestLoadAllDefaultsEmptyUnit(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	store.Set(ctx, kv.Key, `[{"name":"b","initial_time":"2:00","duration_value":"1","duration_unit":""}]`)

	got, _ := kv.New(pkgLog.NewNop(), store).LoadAll(ctx)
	if got[0].DurationUnit != model.UnitSeconds {
		t.Errorf("expected seconds, got %q", got[0].DurationUnit)
	}
}

func TestReplaceAllRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	repo := kv.New(pkgLog.NewNop(), store)

	in := []model.Preset{
		{Name: "standup", FormSnapshot: model.FormSnapshot{InitialTime: "9:00 AM", DurationMagnitude: "15", DurationUnit: model.UnitMinutes}},
		{Name: "trip", FormSnapshot: model.FormSnapshot{InitialTime: "6:00", DurationMagnitude: "3", DurationUnit: model.UnitDays, UseStartDate: true, StartDate: "2024-05-01"}},
	}
	if err := repo.ReplaceAll(ctx, in); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	out, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Errorf("round trip mismatch: %+v", out)
	}

	if err := repo.ReplaceAll(ctx, nil); err != nil {
		t.Fatalf("ReplaceAll(nil): %v", err)
	}
	raw, _, _ := store.Get(ctx, kv.Key)
	if raw != "[]" {
		t.Errorf("expected empty array, got %q", raw)
	}
}

func ptr(s string) *string { return &s }
