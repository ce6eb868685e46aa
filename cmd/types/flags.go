package types

const (
	FlagHome     = "home"
	FlagLogLevel = "log-level"

	DefaultHome     = "$HOME/.treerelay"
	DefaultLogLevel = "info"
)
