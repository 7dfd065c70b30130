package certificate

import "testing"

const gmetroCert = `GMETRO Laboratório de Metrologia Ltda
Laboratório acreditado pela Cgcre sob o número CAL 0123
Nº do Certificado GMB032/23 15/03/2023 20/03/2023 22/03/2023
Descrição: Manômetro Digital
Fabricante  WIKA
Modelo  DG-10
Nº de Série  55443
Local da Calibração  Laboratório permanente
Software  GCAL v2.1
`

func TestDispatchSpecializedAtThreshold(t *testing.T) {
	d := NewDispatcher(Config{})
	if _, ok := d.Select(gmetroCert).(*GmetroExtractor); !ok {
		t.Fatal("expected the specialized extractor for a certificate with >=2 indicators")
	}
}

func TestDispatchGenericBelowThreshold(t *testing.T) {
	d := NewDispatcher(Config{})
	tests := []struct {
		name string
		text string
	}{
		{"no indicators", "Certificado de Calibração comum\nModelo: X\n"},
		{"single indicator", "Laboratório acreditado pela Cgcre\nModelo: X\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := d.Select(tt.text).(*GenericExtractor); !ok {
				t.Errorf("expected the generic extractor")
			}
		})
	}
}

func TestDispatchThresholdConfigurable(t *testing.T) {
	d := NewDispatcher(Config{DispatchThreshold: 1})
	if _, ok := d.Select("menção à Cgcre apenas").(*GmetroExtractor); !ok {
		t.Error("threshold 1 must route a single indicator to the specialized path")
	}
}

func TestGenericRecordHasNoSpecializedPayload(t *testing.T) {
	d := NewDispatcher(Config{})
	rec := d.Select("Modelo: X\n").extract("Modelo: X\n", "x.pdf")
	if rec.Specialized != nil {
		t.Error("generic path must not attach the specialized payload")
	}
}
