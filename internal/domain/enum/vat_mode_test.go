package enum

import (
	"encoding/json"
	"testing"
)

func TestVatModeUnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want VatMode
	}{
		{`"Vatable"`, VatModeVatable},
		{`"vatable"`, VatModeVatable},
		{`"Exempt"`, VatModeExempt},
		{`"all"`, VatModeAll},
		{`0`, VatModeVatable},
		{`2`, VatModeAll},
	}

	for _, tt := range tests {
		var m VatMode
		if err := json.Unmarshal([]byte(tt.in), &m); err != nil {
			t.Errorf("Unmarshal(%s) error = %v", tt.in, err)
			continue
		}
		if m != tt.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, m, tt.want)
		}
	}
}

func TestVatModeUnmarshalJSONRejectsUnknownValues(t *testing.T) {
	for _, in := range []string{`"gst"`, `"VATABLE"`, `7`, `-1`, `3`} {
		var m VatMode
		if err := json.Unmarshal([]byte(in), &m); err == nil {
			t.Errorf("Unmarshal(%s) accepted, want error", in)
		}
	}
}

func TestVatModeIsValid(t *testing.T) {
	for _, m := range []VatMode{VatModeVatable, VatModeExempt, VatModeAll} {
		if !m.IsValid() {
			t.Errorf("%v should be valid", m)
		}
	}
	for _, m := range []VatMode{VatMode(-1), VatMode(3), VatMode(7)} {
		if m.IsValid() {
			t.Errorf("VatMode(%d) should be invalid", int(m))
		}
	}
}
