// Package cli defines the command-line switch registry and the parser that
// turns raw arguments into an Options value.
//
// The registry is data, not code: it is carried inside the execution
// context, and plugins extend it at run time with new switches, short-form
// aliases and switch-to-plugin-param converters. The parse-options pipeline
// task compiles the registry into a pflag.FlagSet on every run, so switches
// registered by a plugin during initialize-plugins are parsed exactly like
// built-in ones.
package cli
