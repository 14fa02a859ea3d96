package statcard

import (
	"encoding/json"
	"testing"
)

func TestValueConstructors(t *testing.T) {
	tests := []struct {
		name string
		got  Value
		want string
	}{
		{"text", Text("n/a"), "n/a"},
		{"int", Int(1200), "1200"},
		{"negative int", Int(-3), "-3"},
		{"zero", Int(0), "0"},
		{"float", Float(99.5), "99.5"},
		{"whole float", Float(3), "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.String() != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input   string
		want    Value
		wantErr bool
	}{
		{`"1,204"`, "1,204", false},
		{`1200`, "1200", false},
		{`1.50`, "1.50", false},
		{`-7`, "-7", false},
		{`null`, "", false},
		{`""`, "", false},
		{`true`, "", true},
		{`{"a":1}`, "", true},
		{`[1]`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var v Value
			err := json.Unmarshal([]byte(tt.input), &v)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && v != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.input, v, tt.want)
			}
		})
	}
}

func TestValue_UnmarshalJSON_InStruct(t *testing.T) {
	var body struct {
		Value Value `json:"value"`
	}
	if err := json.Unmarshal([]byte(`{"value": 3}`), &body); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if body.Value != "3" {
		t.Errorf("Value = %q, want %q", body.Value, "3")
	}
}

func TestProps_Normalize(t *testing.T) {
	p := Props{
		Title:      "  Revenue ",
		Value:      " 1200 ",
		Subtitle:   "\tthis month\n",
		Trend:      " UP ",
		TrendValue: " 8% ",
		Variant:    "Success",
	}

	got := p.Normalize()

	if got.Title != "Revenue" {
		t.Errorf("Title = %q, want %q", got.Title, "Revenue")
	}
	if got.Value != "1200" {
		t.Errorf("Value = %q, want %q", got.Value, "1200")
	}
	if got.Subtitle != "this month" {
		t.Errorf("Subtitle = %q, want %q", got.Subtitle, "this month")
	}
	if got.Trend != TrendUp {
		t.Errorf("Trend = %q, want %q", got.Trend, TrendUp)
	}
	if got.TrendValue != "8%" {
		t.Errorf("TrendValue = %q, want %q", got.TrendValue, "8%")
	}
	if got.Variant != VariantSuccess {
		t.Errorf("Variant = %q, want %q", got.Variant, VariantSuccess)
	}

	// Normalize returns a copy.
	if p.Title != "  Revenue " {
		t.Error("Normalize should not modify the receiver")
	}
}

func TestProps_Normalize_DefaultVariant(t *testing.T) {
	got := Props{Title: "x", Value: "1"}.Normalize()
	if got.Variant != VariantDefault {
		t.Errorf("Variant = %q, want %q", got.Variant, VariantDefault)
	}
	if got.Trend != "" {
		t.Errorf("Trend = %q, want empty", got.Trend)
	}
}
