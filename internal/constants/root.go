package constants

import "time"

const (
	AppName            = "wellfit"
	DefaultKeyringUser = "session-token"
	DefaultConfigDir   = "~/.config/wellfit"
	DefaultDBFile      = "wellfit.db"
	ServerLockfile     = "server.lock"
	Version            = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DaysPerWeek is the length of every weekly series.
	DaysPerWeek = 7

	// Client defaults
	DefaultAPIURL      = "http://localhost:5000"
	DefaultHTTPTimeout = 10 * time.Second
	DefaultTimezone    = "Local"

	// Server defaults
	DefaultServerAddr     = ":5000"
	DefaultJWTSecret      = "dev"
	DefaultTokenTTL       = 72 * time.Hour
	DefaultAllowedOrigins = "http://localhost:5173"
	DefaultValueFloor     = 0
	DefaultValueCeiling   = 0 // no ceiling
	ShutdownTimeout       = 5 * time.Second

	// Default goals, used when the server has none stored yet
	DefaultWaterGoal   = 8
	DefaultSleepGoal   = 7
	DefaultWorkoutGoal = 1

	// DefaultAPIErrorMessage is used when a failed response carries no message.
	DefaultAPIErrorMessage = "API request failed"
	// AuthFailedMessage is shown for every login/register failure.
	AuthFailedMessage = "invalid credentials or server error"
)

// Environment variables
const (
	EnvAPIURL         = "WELLFIT_API_URL"
	EnvTimezone       = "WELLFIT_TIMEZONE"
	EnvHTTPTimeout    = "WELLFIT_HTTP_TIMEOUT"
	EnvServerAddr     = "WELLFIT_ADDR"
	EnvDatabase       = "WELLFIT_DATABASE"
	EnvJWTSecret      = "WELLFIT_JWT_SECRET"
	EnvTokenTTLHours  = "WELLFIT_TOKEN_TTL_HOURS"
	EnvAllowedOrigins = "WELLFIT_ALLOWED_ORIGINS"
	EnvValueFloor     = "WELLFIT_VALUE_FLOOR"
	EnvValueCeiling   = "WELLFIT_VALUE_CEILING"
	EnvEnvironment    = "WELLFIT_ENV"
)
