package inputval

import (
	"strings"
	"testing"
)

func TestIsValidVariant(t *testing.T) {
	tests := []struct {
		variant string
		want    bool
	}{
		{"", true},
		{"default", true},
		{"success", true},
		{"warning", true},
		{"destructive", true},
		{"SUCCESS", true},
		{"  Warning  ", true},

		{"info", false},
		{"danger", false},
		{"primary", false},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			if got := IsValidVariant(tt.variant); got != tt.want {
				t.Errorf("IsValidVariant(%q) = %v, want %v", tt.variant, got, tt.want)
			}
		})
	}
}

func TestIsValidTrend(t *testing.T) {
	tests := []struct {
		trend string
		want  bool
	}{
		{"", true},
		{"up", true},
		{"down", true},
		{"neutral", true},
		{" UP ", true},

		{"flat", false},
		{"increase", false},
	}

	for _, tt := range tests {
		t.Run(tt.trend, func(t *testing.T) {
			if got := IsValidTrend(tt.trend); got != tt.want {
				t.Errorf("IsValidTrend(%q) = %v, want %v", tt.trend, got, tt.want)
			}
		})
	}
}

func TestIsValidIcon(t *testing.T) {
	tests := []struct {
		icon string
		want bool
	}{
		{"", true},
		{"dollar", true},
		{"Users", true},
		{"rocket", false},
	}

	for _, tt := range tests {
		t.Run(tt.icon, func(t *testing.T) {
			if got := IsValidIcon(tt.icon); got != tt.want {
				t.Errorf("IsValidIcon(%q) = %v, want %v", tt.icon, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		input     CardInput
		wantError bool
	}{
		{
			name:      "minimal valid input",
			input:     CardInput{Title: "Revenue", Value: "1200"},
			wantError: false,
		},
		{
			name:      "full valid input",
			input:     CardInput{Title: "Revenue", Value: "1200", Subtitle: "this month", Icon: "dollar", Trend: "up", TrendValue: "8%", Variant: "success"},
			wantError: false,
		},
		{
			name:      "missing title",
			input:     CardInput{Value: "1200"},
			wantError: true,
		},
		{
			name:      "missing value",
			input:     CardInput{Title: "Revenue"},
			wantError: true,
		},
		{
			name:      "unknown variant",
			input:     CardInput{Title: "Revenue", Value: "1", Variant: "info"},
			wantError: true,
		},
		{
			name:      "unknown trend",
			input:     CardInput{Title: "Revenue", Value: "1", Trend: "sideways"},
			wantError: true,
		},
		{
			name:      "unknown icon",
			input:     CardInput{Title: "Revenue", Value: "1", Icon: "rocket"},
			wantError: true,
		},
		{
			name:      "title too long",
			input:     CardInput{Title: strings.Repeat("x", 81), Value: "1"},
			wantError: true,
		},
		{
			name:      "trend value too long",
			input:     CardInput{Title: "t", Value: "1", TrendValue: strings.Repeat("9", 25)},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.input)
			if tt.wantError && !result.HasErrors() {
				t.Errorf("Validate() expected errors, got none")
			}
			if !tt.wantError && result.HasErrors() {
				t.Errorf("Validate() expected no errors, got: %s", result.First())
			}
		})
	}
}

func TestValidate_Messages(t *testing.T) {
	result := Validate(CardInput{Title: "Revenue", Value: "1", Variant: "info"})
	if !result.HasErrors() {
		t.Fatal("Validate() expected errors")
	}
	msg := result.First()
	if !strings.HasPrefix(msg, "Variant must be one of:") {
		t.Errorf("First() = %q, want variant message", msg)
	}
	for _, v := range []string{"default", "success", "warning", "destructive"} {
		if !strings.Contains(msg, v) {
			t.Errorf("message %q should list %q", msg, v)
		}
	}

	result = Validate(CardInput{Value: "1"})
	if got := result.First(); got != "Title is required." {
		t.Errorf("First() = %q, want %q", got, "Title is required.")
	}
}

func TestResult_First(t *testing.T) {
	// Empty result
	r := &Result{}
	if got := r.First(); got != "" {
		t.Errorf("First() on empty result = %q, want empty string", got)
	}

	// Result with errors
	r = &Result{
		Errors: []FieldError{
			{Field: "title", Label: "Title", Message: "Title is required."},
			{Field: "value", Label: "Value", Message: "Value is required."},
		},
	}
	if got := r.First(); got != "Title is required." {
		t.Errorf("First() = %q, want %q", got, "Title is required.")
	}
}

func TestResult_All(t *testing.T) {
	// Empty result
	r := &Result{}
	if got := r.All(); got != "" {
		t.Errorf("All() on empty result = %q, want empty string", got)
	}

	r = &Result{
		Errors: []FieldError{
			{Field: "title", Label: "Title", Message: "Title is required."},
			{Field: "value", Label: "Value", Message: "Value is required."},
		},
	}
	want := "Title is required.; Value is required."
	if got := r.All(); got != want {
		t.Errorf("All() = %q, want %q", got, want)
	}
}

func TestResult_Fields(t *testing.T) {
	r := &Result{
		Errors: []FieldError{
			{Field: "title", Message: "Title is required."},
			{Field: "title", Message: "second message ignored"},
			{Field: "variant", Message: "Variant is invalid."},
		},
	}
	got := r.Fields()
	if len(got) != 2 {
		t.Fatalf("Fields() has %d entries, want 2", len(got))
	}
	if got["title"] != "Title is required." {
		t.Errorf("Fields()[title] = %q", got["title"])
	}
	if got["variant"] != "Variant is invalid." {
		t.Errorf("Fields()[variant] = %q", got["variant"])
	}
}

func TestResult_HasErrors(t *testing.T) {
	r := &Result{}
	if r.HasErrors() {
		t.Error("HasErrors() on empty result should return false")
	}

	r = &Result{Errors: []FieldError{{Field: "title", Message: "Title is required."}}}
	if !r.HasErrors() {
		t.Error("HasErrors() with errors should return true")
	}
}

func TestNameLists(t *testing.T) {
	if got := strings.Join(VariantNames(), ","); got != "default,success,warning,destructive" {
		t.Errorf("VariantNames() = %q", got)
	}
	if got := strings.Join(TrendNames(), ","); got != "up,down,neutral" {
		t.Errorf("TrendNames() = %q", got)
	}
}
