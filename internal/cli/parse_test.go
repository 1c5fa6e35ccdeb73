package cli

import (
	"reflect"
	"testing"
)

// TestParseDefaults tests parsing against the built-in switch table.
func TestParseDefaults(t *testing.T) {
	t.Parallel()

	t.Run("long switches", func(t *testing.T) {
		t.Parallel()

		opts, err := Parse(NewRegistry(), []string{
			"suggest", "--all", "--min-priority", "high", "--format", "json", "lib/",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !reflect.DeepEqual(opts.Args, []string{"suggest", "lib/"}) {
			t.Errorf("Args = %v, want [suggest lib/]", opts.Args)
		}
		if !opts.GivenBool("all") {
			t.Error("expected --all to be set")
		}
		if v, ok := opts.String("min-priority"); !ok || v != "high" {
			t.Errorf("min-priority = %q (given=%v), want high", v, ok)
		}
		if v, _ := opts.String("format"); v != "json" {
			t.Errorf("format = %q, want json", v)
		}
	})

	t.Run("short aliases", func(t *testing.T) {
		t.Parallel()

		opts, err := Parse(NewRegistry(), []string{"-a", "-A", "-c", "readability", "-C", "strict-profile"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !opts.GivenBool("all") || !opts.GivenBool("all-priorities") {
			t.Error("expected -a and -A to map to their long switches")
		}
		if v, _ := opts.String("checks"); v != "readability" {
			t.Errorf("-c = %q, want readability", v)
		}
		// -C is short for config-name, not config-file.
		if v, _ := opts.String("config-name"); v != "strict-profile" {
			t.Errorf("-C = %q, want strict-profile", v)
		}
		if _, given := opts.String("config-file"); given {
			t.Error("-C must not populate config-file")
		}
	})

	t.Run("keep switches accumulate in order", func(t *testing.T) {
		t.Parallel()

		opts, err := Parse(NewRegistry(), []string{
			"--files-included", "lib/**/*.ex",
			"--files-included", "src/**/*.ex",
			"--files-excluded", "test/",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"lib/**/*.ex", "src/**/*.ex"}
		if !reflect.DeepEqual(opts.Strings("files-included"), want) {
			t.Errorf("files-included = %v, want %v", opts.Strings("files-included"), want)
		}
		if !reflect.DeepEqual(opts.Strings("files-excluded"), []string{"test/"}) {
			t.Errorf("files-excluded = %v", opts.Strings("files-excluded"))
		}
	})

	t.Run("unset switches are absent", func(t *testing.T) {
		t.Parallel()

		opts, err := Parse(NewRegistry(), []string{"list"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, given := opts.Bool("strict"); given {
			t.Error("strict should not be marked as given")
		}
		if _, given := opts.String("format"); given {
			t.Error("format should not be marked as given")
		}
	})

	t.Run("unknown switch is a parse error", func(t *testing.T) {
		t.Parallel()

		if _, err := Parse(NewRegistry(), []string{"--no-such-switch"}); err == nil {
			t.Error("expected error for unknown switch")
		}
	})
}

// TestRegistryExtension tests plugin-contributed switches and aliases.
func TestRegistryExtension(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.PutSwitch("my_plugin", "castle", SwitchString)
	reg.PutAlias("my_plugin", "castle", "X")
	reg.PutParamConverter("my_plugin", "castle", "castle_name")

	opts, err := Parse(reg, []string{"-X", "grayskull"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := opts.String("castle"); v != "grayskull" {
		t.Errorf("plugin switch = %q, want grayskull", v)
	}

	conv := reg.Converters()
	if len(conv) != 1 || conv[0].Param != "castle_name" || conv[0].Plugin != "my_plugin" {
		t.Errorf("converters = %+v", conv)
	}

	v, ok := opts.SwitchValue("castle")
	if !ok || v != "grayskull" {
		t.Errorf("SwitchValue = %v (%v)", v, ok)
	}
}

// TestSwitchTypeString tests diagnostic names.
func TestSwitchTypeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  SwitchType
		want string
	}{
		{SwitchBool, "boolean"},
		{SwitchString, "string"},
		{SwitchKeep, "keep"},
		{SwitchType(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("SwitchType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
