package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// Options is the parse result consumed by the pipeline. Only switches that
// were actually given end up in the value maps, so callers can distinguish
// "not set" from a zero value.
type Options struct {
	// Args are the remaining positional arguments in order. The first
	// one usually names the command to run.
	Args []string

	bools   map[string]bool
	strings map[string]string
	keeps   map[string][]string
}

// Bool reports the value of a boolean switch and whether it was given.
func (o *Options) Bool(name string) (bool, bool) {
	v, ok := o.bools[name]
	return v, ok
}

// GivenBool reports whether a boolean switch was given and set.
func (o *Options) GivenBool(name string) bool {
	return o.bools[name]
}

// String returns the value of a string switch and whether it was given.
func (o *Options) String(name string) (string, bool) {
	v, ok := o.strings[name]
	return v, ok
}

// Strings returns the accumulated values of a keep switch in the order
// they appeared on the command line.
func (o *Options) Strings(name string) []string {
	return o.keeps[name]
}

// Parse compiles the registry into a flag set and parses args against it.
// Unknown switches and malformed values are reported as an error; they are
// a configuration error, not a crash, so the caller records the message and
// halts the pipeline.
func Parse(reg *Registry, args []string) (*Options, error) {
	return parse(reg, args, false)
}

// ParseTolerant parses like Parse but skips switches the registry does not
// recognize yet. The pipeline uses it before plugins have registered their
// switches; the strict Parse that follows plugin initialization rejects
// anything still unknown.
func ParseTolerant(reg *Registry, args []string) (*Options, error) {
	return parse(reg, args, true)
}

func parse(reg *Registry, args []string, tolerant bool) (*Options, error) {
	fs := pflag.NewFlagSet("credo", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	if tolerant {
		fs.ParseErrorsWhitelist = pflag.ParseErrorsWhitelist{UnknownFlags: true}
	}

	boolVals := make(map[string]*bool)
	stringVals := make(map[string]*string)
	keepVals := make(map[string]*[]string)

	for _, sw := range reg.Switches() {
		shorthand := reg.aliasFor(sw.Name)
		switch sw.Type {
		case SwitchBool:
			boolVals[sw.Name] = fs.BoolP(sw.Name, shorthand, false, "")
		case SwitchString:
			stringVals[sw.Name] = fs.StringP(sw.Name, shorthand, "", "")
		case SwitchKeep:
			keepVals[sw.Name] = fs.StringArrayP(sw.Name, shorthand, nil, "")
		}
	}

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing command line: %w", err)
	}

	opts := &Options{
		Args:    fs.Args(),
		bools:   make(map[string]bool),
		strings: make(map[string]string),
		keeps:   make(map[string][]string),
	}
	for name, v := range boolVals {
		if fs.Changed(name) {
			opts.bools[name] = *v
		}
	}
	for name, v := range stringVals {
		if fs.Changed(name) {
			opts.strings[name] = *v
		}
	}
	for name, v := range keepVals {
		if fs.Changed(name) {
			opts.keeps[name] = *v
		}
	}

	return opts, nil
}

// SwitchValue returns the parsed value of an arbitrary switch as an any,
// used by the param converters to hand plugin switch values over without
// knowing their type. The second return reports whether the switch was given.
func (o *Options) SwitchValue(name string) (any, bool) {
	if v, ok := o.bools[name]; ok {
		return v, true
	}
	if v, ok := o.strings[name]; ok {
		return v, true
	}
	if v, ok := o.keeps[name]; ok {
		return v, true
	}
	return nil, false
}
