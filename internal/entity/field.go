package entity

import (
	"encoding/json"
	"strings"

	"github.com/Idelcio/calibration-extractor/constants"
)

// Field is a textual certificate field that tracks presence separately from
// the value, so "no pattern matched" is never conflated with a blank value.
// The "n/i" sentinel exists only in the JSON form.
type Field struct {
	Value string
	Set   bool
}

// NewField returns a present field holding v.
func NewField(v string) Field {
	return Field{Value: v, Set: true}
}

// IsBlank reports whether the field is absent or holds only whitespace.
func (f Field) IsBlank() bool {
	return !f.Set || strings.TrimSpace(f.Value) == ""
}

// Or returns the field itself when present and non-blank, otherwise other.
func (f Field) Or(other Field) Field {
	if f.IsBlank() {
		return other
	}
	return f
}

func (f Field) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return json.Marshal(constants.NotInformed)
	}
	return json.Marshal(f.Value)
}

func (f *Field) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Field{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == constants.NotInformed {
		*f = Field{}
		return nil
	}
	*f = Field{Value: s, Set: true}
	return nil
}
