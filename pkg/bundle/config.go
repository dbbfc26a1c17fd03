package bundle

// Default delimiter fragments. These must never change: bundles produced with
// the defaults are parsed by every txtpack version.
const (
	DefaultStartPrefix      = "--- FILE: "
	DefaultStartMiddle      = " ("
	DefaultStartBytesSuffix = " bytes) ---"
	DefaultEndPrefix        = "--- END: "
	DefaultEndSuffix        = " ---"
)

// Config describes the five literal fragments composing start and end
// delimiter lines. It is a plain value; construct it once and pass it by
// value into every codec and scanner call.
//
// Fragments must be non-empty and must not contain a newline. Behaviour is
// undefined otherwise.
type Config struct {
	StartPrefix      string
	StartMiddle      string
	StartBytesSuffix string
	EndPrefix        string
	EndSuffix        string
}

// DefaultConfig returns the fixed default grammar
// "--- FILE: <name> (<n> bytes) ---" / "--- END: <name> ---".
func DefaultConfig() Config {
	return Config{
		StartPrefix:      DefaultStartPrefix,
		StartMiddle:      DefaultStartMiddle,
		StartBytesSuffix: DefaultStartBytesSuffix,
		EndPrefix:        DefaultEndPrefix,
		EndSuffix:        DefaultEndSuffix,
	}
}
