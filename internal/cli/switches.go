package cli

// SwitchType describes how a switch's value is parsed.
type SwitchType int

const (
	// SwitchBool is a flag without a value.
	SwitchBool SwitchType = iota

	// SwitchString takes a single string value; a repeated switch keeps
	// the last value.
	SwitchString

	// SwitchKeep takes string values and may repeat; values accumulate
	// into an ordered sequence.
	SwitchKeep
)

// String returns the type name used in diagnostics.
func (t SwitchType) String() string {
	switch t {
	case SwitchBool:
		return "boolean"
	case SwitchString:
		return "string"
	case SwitchKeep:
		return "keep"
	default:
		return "unknown"
	}
}

// Switch is one recognized long-form command-line switch.
type Switch struct {
	// Name is the long switch name without dashes, e.g. "min-priority".
	Name string

	// Type controls value parsing.
	Type SwitchType

	// Plugin identifies the plugin that registered the switch, or ""
	// for built-in switches.
	Plugin string
}

// Alias maps a short-form switch to a long name, e.g. "a" to "all".
type Alias struct {
	Alias  string
	Name   string
	Plugin string
}

// ParamConverter records that a switch's parsed value should be copied into
// a named plugin parameter after CLI parsing. This is how plugins receive
// user-supplied configuration without the core knowing their schema.
type ParamConverter struct {
	Switch string
	Plugin string
	Param  string
}

// Registry holds the recognized switches, their aliases and the
// plugin-contributed param converters. Order of registration is preserved.
type Registry struct {
	switches   []Switch
	aliases    []Alias
	converters []ParamConverter
}

// NewRegistry creates a registry pre-populated with the built-in switch
// table and its short-form aliases.
func NewRegistry() *Registry {
	r := &Registry{}

	for _, sw := range []Switch{
		{Name: "all", Type: SwitchBool},
		{Name: "all-priorities", Type: SwitchBool},
		{Name: "files-included", Type: SwitchKeep},
		{Name: "files-excluded", Type: SwitchKeep},
		{Name: "checks", Type: SwitchString},
		{Name: "config-name", Type: SwitchString},
		{Name: "config-file", Type: SwitchString},
		{Name: "color", Type: SwitchBool},
		{Name: "crash-on-error", Type: SwitchBool},
		{Name: "debug", Type: SwitchBool},
		{Name: "enable-disabled-checks", Type: SwitchString},
		{Name: "mute-exit-status", Type: SwitchBool},
		{Name: "format", Type: SwitchString},
		{Name: "help", Type: SwitchBool},
		{Name: "ignore-checks", Type: SwitchString},
		{Name: "ignore", Type: SwitchString},
		{Name: "min-priority", Type: SwitchString},
		{Name: "only", Type: SwitchString},
		{Name: "read-from-stdin", Type: SwitchBool},
		{Name: "strict", Type: SwitchBool},
		{Name: "verbose", Type: SwitchBool},
		{Name: "version", Type: SwitchBool},
	} {
		r.switches = append(r.switches, sw)
	}

	// The alias table is part of the compatibility surface; note that -C
	// is short for config-name, not config-file.
	for _, a := range []Alias{
		{Alias: "a", Name: "all"},
		{Alias: "A", Name: "all-priorities"},
		{Alias: "c", Name: "checks"},
		{Alias: "C", Name: "config-name"},
		{Alias: "d", Name: "debug"},
		{Alias: "h", Name: "help"},
		{Alias: "i", Name: "ignore-checks"},
		{Alias: "v", Name: "version"},
	} {
		r.aliases = append(r.aliases, a)
	}

	return r
}

// PutSwitch appends a recognized switch. Registered by plugins during
// initialize-plugins; the plugin name is recorded for diagnostics.
func (r *Registry) PutSwitch(plugin, name string, typ SwitchType) {
	r.switches = append(r.switches, Switch{Name: name, Type: typ, Plugin: plugin})
}

// PutAlias appends a short-form alias mapping for an existing switch.
func (r *Registry) PutAlias(plugin, name, alias string) {
	r.aliases = append(r.aliases, Alias{Alias: alias, Name: name, Plugin: plugin})
}

// PutParamConverter records that switchName's parsed value is copied into
// plugin's parameter paramName after CLI parsing.
func (r *Registry) PutParamConverter(plugin, switchName, paramName string) {
	r.converters = append(r.converters, ParamConverter{
		Switch: switchName,
		Plugin: plugin,
		Param:  paramName,
	})
}

// Switches returns a snapshot of the registered switches in order.
func (r *Registry) Switches() []Switch {
	out := make([]Switch, len(r.switches))
	copy(out, r.switches)
	return out
}

// Aliases returns a snapshot of the registered aliases in order.
func (r *Registry) Aliases() []Alias {
	out := make([]Alias, len(r.aliases))
	copy(out, r.aliases)
	return out
}

// Converters returns a snapshot of the registered param converters.
func (r *Registry) Converters() []ParamConverter {
	out := make([]ParamConverter, len(r.converters))
	copy(out, r.converters)
	return out
}

// aliasFor returns the short form registered for the long switch name,
// or "" when there is none.
func (r *Registry) aliasFor(name string) string {
	for _, a := range r.aliases {
		if a.Name == name {
			return a.Alias
		}
	}
	return ""
}
