package env

// Set at build time through -ldflags.
var (
	AppName    = "fl2tool"
	Version    = "dev"
	CommitHash = "none"
	BuildTime  = "unknown"
)
