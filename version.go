package arbor

// Version is the Arbor release string reported by the CLI.
const Version = "0.2.0"

// BuildDate is stamped via -ldflags on release builds.
var BuildDate = "unknown"
