package constants

const (
	AppName            = "tally"
	Version            = "v0.3.0"
	DefaultConfigPath  = "~/.config/tally/tally.db"
	DefaultKeyringUser = "database-connection"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TrailingPeriods is the number of weekly/monthly buckets in habit histories
	TrailingPeriods = 12

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "tally-"
	BackupFileSuffix = ".db"
)
