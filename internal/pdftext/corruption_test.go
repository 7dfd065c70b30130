package pdftext

import "testing"

func TestLooksCorrupted(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"interleaved date run", "RBC 033310///000676//22/0202025255 Certificado", true},
		{"ordinary prose", "Certificado de Calibração Nº 1234/2023 emitido em 12/06/2023", false},
		{"empty", "", false},
		{"slashes without digit runs", "a///b//cc/dddddd", false},
		{"digit runs too short", "03///06//2/02025", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksCorrupted(tt.text); got != tt.want {
				t.Errorf("LooksCorrupted(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
