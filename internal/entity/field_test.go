package entity

import (
	"encoding/json"
	"testing"
)

func TestFieldMarshalSentinel(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{"unset emits sentinel", Field{}, `"n/i"`},
		{"set value", NewField("Mitutoyo"), `"Mitutoyo"`},
		{"set but blank stays blank, not sentinel", NewField(""), `""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.field)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFieldUnmarshal(t *testing.T) {
	var f Field
	if err := json.Unmarshal([]byte(`"n/i"`), &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if f.Set {
		t.Error("sentinel should unmarshal to an unset field")
	}
	if err := json.Unmarshal([]byte(`"ABC123"`), &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !f.Set || f.Value != "ABC123" {
		t.Errorf("got %+v, want set ABC123", f)
	}
	if err := json.Unmarshal([]byte(`null`), &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if f.Set {
		t.Error("null should unmarshal to an unset field")
	}
}

func TestFieldOr(t *testing.T) {
	a := NewField("kept")
	b := NewField("fallback")
	if got := a.Or(b); got.Value != "kept" {
		t.Errorf("non-blank field must win, got %q", got.Value)
	}
	if got := (Field{}).Or(b); got.Value != "fallback" {
		t.Errorf("unset field must yield fallback, got %q", got.Value)
	}
	if got := NewField("  ").Or(b); got.Value != "fallback" {
		t.Errorf("whitespace-only field must yield fallback, got %q", got.Value)
	}
}

func TestNewInstrumentRecordDefaults(t *testing.T) {
	rec := NewInstrumentRecord()
	if rec.CalibrationPeriodMonths != 12 {
		t.Errorf("period = %d, want 12", rec.CalibrationPeriodMonths)
	}
	if rec.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", rec.Quantity)
	}
	if rec.Status.Value != "Sem Calibração" {
		t.Errorf("status = %q", rec.Status.Value)
	}
	m := NewMeasurementRecord()
	if !m.SymmetricTolerance || m.DecisionRuleID != 1 {
		t.Errorf("measurement defaults wrong: %+v", m)
	}
}
