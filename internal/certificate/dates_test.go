package certificate

import (
	"strings"
	"testing"
)

func TestResolveDateSlashForm(t *testing.T) {
	text := "Data da Calibração: 12/06/2023\n"
	if got := ResolveDate(text, calibrationDatePatterns); got != "2023-06-12" {
		t.Errorf("got %q, want 2023-06-12", got)
	}
}

func TestResolveDateMonthAbbrevForm(t *testing.T) {
	text := "Data da calibração: 19-jan-24\n"
	if got := ResolveDate(text, calibrationDatePatterns); got != "2024-01-19" {
		t.Errorf("got %q, want 2024-01-19", got)
	}
}

func TestResolveDateTwoDigitYear(t *testing.T) {
	text := "Data da emissão: 22-dez-24\n"
	if got := ResolveDate(text, issueDatePatterns); got != "2024-12-22" {
		t.Errorf("got %q, want 2024-12-22", got)
	}
}

func TestResolveDateAbsent(t *testing.T) {
	if got := ResolveDate("sem datas aqui", calibrationDatePatterns); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestAggressiveDateMajorityVote(t *testing.T) {
	// The calibration date repeats across header and body; majority wins.
	text := strings.Repeat("certificado emitido em 12/06/2023\n", 3) + "validade 01/01/2099\n"
	if got := aggressiveDate(text, "calibra", 2); got != "2023-06-12" {
		t.Errorf("got %q, want 2023-06-12", got)
	}
}

func TestAggressiveDateContextAnchor(t *testing.T) {
	// No repetition: the first valid date after the anchor phrase wins.
	text := "registro 05/05/2023\ndata da calibração\nem 10/06/2023 por fulano\n"
	if got := aggressiveDate(text, "calibra", 2); got != "2023-06-10" {
		t.Errorf("got %q, want 2023-06-10", got)
	}
}

func TestAggressiveDateSingletonLastResort(t *testing.T) {
	if got := aggressiveDate("única data 03/04/2022 no texto", "calibra", 2); got != "2022-04-03" {
		t.Errorf("got %q, want 2022-04-03", got)
	}
}

func TestAggressiveDateSkipsInvalidCalendarDates(t *testing.T) {
	// 45/13/2023 fails validation even though it repeats; the single valid
	// date must win.
	text := "45/13/2023 45/13/2023 07/02/2023"
	if got := aggressiveDate(text, "calibra", 2); got != "2023-02-07" {
		t.Errorf("got %q, want 2023-02-07", got)
	}
}

func TestAggressiveDateNoDates(t *testing.T) {
	if got := aggressiveDate("nenhuma data", "calibra", 2); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"31/01/2023", true},
		{"29/02/2023", true}, // simplified: February always allows 29
		{"30/02/2023", false},
		{"31/04/2023", false},
		{"01/13/2023", false},
		{"00/05/2023", false},
	}
	for _, tt := range tests {
		if got := validDate(tt.date); got != tt.want {
			t.Errorf("validDate(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}
