package model

import "testing"

// TestSeverityForPriority tests the priority to severity tier boundaries.
func TestSeverityForPriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		priority int
		want     Severity
	}{
		{"well above critical boundary", 25, SeverityCritical},
		{"critical boundary is inclusive", 20, SeverityCritical},
		{"major range upper bound", 19, SeverityMajor},
		{"major range", 15, SeverityMajor},
		{"major boundary is inclusive", 10, SeverityMajor},
		{"minor range upper bound", 9, SeverityMinor},
		{"minor range", 5, SeverityMinor},
		{"zero is minor", 0, SeverityMinor},
		{"negative priority is info", -5, SeverityInfo},
		{"deeply negative priority is info", -500, SeverityInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SeverityForPriority(tt.priority); got != tt.want {
				t.Errorf("SeverityForPriority(%d) = %v, want %v", tt.priority, got, tt.want)
			}
		})
	}
}

// TestSeverityString tests the export tags.
func TestSeverityString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityInfo, "INFO"},
		{SeverityMinor, "MINOR"},
		{SeverityMajor, "MAJOR"},
		{SeverityCritical, "CRITICAL"},
		{Severity(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if got := tt.severity.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestStripNamespace tests language-namespace prefix removal.
func TestStripNamespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
		want string
	}{
		{
			name: "strips the language qualifier",
			id:   "Elixir.Credo.Check.Readability.ModuleDoc",
			want: "Credo.Check.Readability.ModuleDoc",
		},
		{
			name: "leaves unqualified identifiers unchanged",
			id:   "Credo.Check.Design.TagTODO",
			want: "Credo.Check.Design.TagTODO",
		},
		{
			name: "only strips a leading qualifier",
			id:   "Credo.Elixir.Something",
			want: "Credo.Elixir.Something",
		},
		{
			name: "empty identifier",
			id:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := StripNamespace(tt.id); got != tt.want {
				t.Errorf("StripNamespace(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

// TestParsePriority tests named aliases and raw integers.
func TestParsePriority(t *testing.T) {
	t.Parallel()

	t.Run("accepts named aliases", func(t *testing.T) {
		t.Parallel()

		for name, want := range map[string]int{
			"higher": 20,
			"high":   10,
			"normal": 1,
			"low":    -10,
			"ignore": -100,
		} {
			got, err := ParsePriority(name)
			if err != nil {
				t.Fatalf("ParsePriority(%q) returned error: %v", name, err)
			}
			if got != want {
				t.Errorf("ParsePriority(%q) = %d, want %d", name, got, want)
			}
		}
	})

	t.Run("accepts raw integers", func(t *testing.T) {
		t.Parallel()

		got, err := ParsePriority("-42")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != -42 {
			t.Errorf("ParsePriority(-42) = %d, want -42", got)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Parallel()

		if _, err := ParsePriority("loud"); err == nil {
			t.Error("expected error for unknown priority name")
		}
	})
}
