package config

import (
	"log"
	"time"

	"notable/utils"
)

// DefaultTokenTimeout is used whenever TOKEN_TIMEOUT is absent, zero,
// negative or not a number.
const DefaultTokenTimeout = 3600 * time.Second

// DefaultAppSecret must be overridden in production; Load warns when it
// is still in use.
const DefaultAppSecret = "notable-app-secret"

// Config holds every process-wide setting. It is built once at startup and
// passed explicitly to the components that need it; nothing reads the
// environment after Load returns.
type Config struct {
	Port    string
	TLSCert string
	TLSKey  string

	MongoURI        string
	MongoDB         string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration

	UsersCollection string
	NotesCollection string
	TagsCollection  string

	AppSecret    string
	TokenTimeout time.Duration
}

// Load reads the configuration from the environment.
func Load() *Config {
	cfg := &Config{
		Port:    utils.GetEnvAsString("PORT", "3001"),
		TLSCert: utils.GetEnvAsString("TLS_CERT_FILE", ""),
		TLSKey:  utils.GetEnvAsString("TLS_KEY_FILE", ""),

		MongoURI:        utils.GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         utils.GetEnvAsString("MONGO_DB", "notable"),
		MaxPoolSize:     utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100),
		MinPoolSize:     utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10),
		MaxConnIdleTime: time.Duration(utils.GetEnvAsInt("MONGO_MAX_CONN_IDLE_TIME", 60)) * time.Second,

		UsersCollection: utils.GetEnvAsString("USERS_COLLECTION", "users"),
		NotesCollection: utils.GetEnvAsString("NOTES_COLLECTION", "notes"),
		TagsCollection:  utils.GetEnvAsString("TAGS_COLLECTION", "tags"),

		AppSecret:    utils.GetEnvAsString("APP_SECRET", DefaultAppSecret),
		TokenTimeout: tokenTimeout(),
	}

	if cfg.AppSecret == DefaultAppSecret {
		log.Println("WARNING: APP_SECRET is set to the default value; override it in production")
	}

	return cfg
}

// tokenTimeout reads TOKEN_TIMEOUT in seconds. Anything that does not
// parse to a positive integer falls back to the one hour default.
func tokenTimeout() time.Duration {
	seconds := utils.GetEnvAsInt("TOKEN_TIMEOUT", 0)
	if seconds <= 0 {
		return DefaultTokenTimeout
	}
	return time.Duration(seconds) * time.Second
}
