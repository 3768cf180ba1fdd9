package constants

// PacingStatus represents how achievable a weekly goal still is
type PacingStatus string

// Trend represents the direction of a habit's momentum
type Trend string

const (
	AppName            = "ritual"
	Version            = "v0.3.0"
	DefaultKeyringUser = "remote-connection"
	DefaultConfigPath  = "~/.config/ritual/ritual.json"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// SnapshotVersion is the current snapshot schema version
	SnapshotVersion = 1

	// Env vars for the optional remote store
	EnvRemote  = "RITUAL_REMOTE"
	EnvProfile = "RITUAL_PROFILE"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "ritual-"
	BackupFileSuffix = ".json"

	// Reporting defaults
	DefaultStaleDays    = 7
	DefaultCoverageDays = 28
	DefaultTimelineDays = 14
	DefaultWindows      = "7,28"
	DefaultNudgeLimit   = 3
	DefaultPlanDays     = 7

	// Pacing statuses, ordered best to worst
	PacingMet     PacingStatus = "met"
	PacingOnTrack PacingStatus = "on-track"
	PacingAtRisk  PacingStatus = "at-risk"
	PacingMissed  PacingStatus = "missed"

	// Momentum trends
	TrendRising Trend = "rising"
	TrendSteady Trend = "steady"
	TrendFading Trend = "fading"
)
