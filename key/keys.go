// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Polling - how often the adapters refresh their cached playback state.
const (
	UpdateFrequencyMs2 = "update.frequency_ms2"
)

// YouTube - adapter-specific behaviour.
const (
	YouTubeSkipChapters = "youtube.skip_chapters"
)

// Cover art - how YouTube Music thumbnails are resolved.
const (
	CoverProbe = "cover.probe"
	CoverCache = "cover.cache"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
