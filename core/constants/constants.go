package constants

import "time"

// Echo context keys
const (
	ContextTokenData = "token_data"
	ContextRequestID = "request_id"
)

const (
	HeaderRequestID     = "X-Request-ID"
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)

const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"
	AccessTokenTTL    = 24 * time.Hour
)

// Database pool
const (
	DatabaseMaxOpenConns    = 10
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

const (
	RedisDialTimeout = 5 * time.Second
	// StorageTimeout bounds a single preset read or write.
	StorageTimeout = 2 * time.Second
)

// SuggestedHoursPresetKey is the stable storage key of the persisted preset.
const SuggestedHoursPresetKey = "suggested_hours_preset"

const DateLayout = "2006-01-02"
