package certificate

import "testing"

func TestExtractMeasurementsFullSection(t *testing.T) {
	text := "Faixa de 0 a 300 °C - Resolução de 0,01 °C\n" +
		"Procedimento: PC-001 - Calibração de temperatura\n" +
		"Método: Comparação direta\n" +
		"Incerteza: ±0,05\n"
	got := ExtractMeasurements(text)
	if len(got) != 1 {
		t.Fatalf("got %d measurements, want 1", len(got))
	}
	m := got[0]
	if m.NominalRange.Value != "0 a 300 °C" {
		t.Errorf("nominal range = %q", m.NominalRange.Value)
	}
	if m.Unit.Value != "°C" {
		t.Errorf("unit = %q", m.Unit.Value)
	}
	if m.Resolution.Value != "0.01 °C" {
		t.Errorf("resolution = %q", m.Resolution.Value)
	}
	if len(m.Services) != 1 || m.Services[0] != "PC-001 - Calibração de temperatura" {
		t.Errorf("services = %v", m.Services)
	}
	if m.AcceptanceCriterion.Value != "Comparação direta" {
		t.Errorf("acceptance criterion = %q", m.AcceptanceCriterion.Value)
	}
	if m.ProcessTolerance.Value != "±0,05" {
		t.Errorf("process tolerance = %q", m.ProcessTolerance.Value)
	}
	if !m.SymmetricTolerance || m.DecisionRuleID != 1 {
		t.Errorf("defaults wrong: %+v", m)
	}
}

func TestExtractMeasurementsUnitEmbeddedInLabel(t *testing.T) {
	// "Resolução (mm): 0,0001" carries the unit in the label.
	got := ExtractMeasurements("Resolução (mm): 0,0001\n")
	m := got[0]
	if m.Unit.Value != "mm" {
		t.Errorf("unit = %q, want mm", m.Unit.Value)
	}
	if m.Resolution.Value != "0.0001 mm" {
		t.Errorf("resolution = %q, want 0.0001 mm", m.Resolution.Value)
	}
}

func TestExtractMeasurementsDefaultTolerance(t *testing.T) {
	got := ExtractMeasurements("texto sem seção de medição")
	m := got[0]
	if m.ProcessTolerance.Value != "0,20" {
		t.Errorf("process tolerance = %q, want default 0,20", m.ProcessTolerance.Value)
	}
	if len(m.Services) != 0 {
		t.Errorf("services = %v, want empty", m.Services)
	}
	if m.Unit.Set || m.Resolution.Set || m.NominalRange.Set {
		t.Errorf("range info should be absent: %+v", m)
	}
}
