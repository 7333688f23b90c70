package utils

const (
	ErrorEmptySeed      string = "seed hex string cannot be empty"
	ErrorGridSize       string = "grid size must be positive"
	ErrorUnknownStyle   string = "unknown visual style"
	ErrorNotProgress    string = "not of type progress message"
	ErrorNotFingerprint string = "not a recognised ssh fingerprint"
)
