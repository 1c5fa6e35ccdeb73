package model

// ConfigFile describes one discovered configuration source. Descriptors are
// accumulated in discovery order; later files override earlier ones when the
// resolved configuration is merged.
type ConfigFile struct {
	// Filename is the path of the configuration file, or a symbolic name
	// ("default") for built-in configuration.
	Filename string `json:"filename"`

	// Origin states where the descriptor came from: "default", "file"
	// (found on the search path) or "flag" (given via --config-file).
	Origin string `json:"origin"`
}

// Config-file origins.
const (
	OriginDefault = "default"
	OriginFile    = "file"
	OriginFlag    = "flag"
)
