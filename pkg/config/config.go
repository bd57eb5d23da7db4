package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "INVOICETRACK"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv     = "INVOICETRACK_APP_ENV"
	EnvPort       = "INVOICETRACK_APP_PORT"
	EnvDBDSN      = "INVOICETRACK_DB_DSN"
	EnvDBHost     = "INVOICETRACK_DB_HOST"
	EnvDBUser     = "INVOICETRACK_DB_USER"
	EnvDBName     = "INVOICETRACK_DB_NAME"
	EnvRedisURL   = "INVOICETRACK_REDIS_URL"
	EnvJWTSecret  = "INVOICETRACK_JWT_SECRET"
	EnvJWTIssuer  = "INVOICETRACK_JWT_ISSUER"
	EnvJWTExpMins = "INVOICETRACK_JWT_EXPIRATION_MINUTES"

	EnvIdentitySecret = "INVOICETRACK_IDENTITY_SECRET"
	EnvIdentityIssuer = "INVOICETRACK_IDENTITY_ISSUER"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Identity     IdentityConfig
	Static       StaticConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"INVOICETRACK_APP_ENV" required:"true"`
	Port         string `envconfig:"INVOICETRACK_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"INVOICETRACK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"INVOICETRACK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"INVOICETRACK_DB_DSN"`
	Driver string `envconfig:"INVOICETRACK_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"INVOICETRACK_DB_HOST"`
	LegacyPort     int    `envconfig:"INVOICETRACK_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"INVOICETRACK_DB_USER"`
	LegacyPassword string `envconfig:"INVOICETRACK_DB_PASSWORD"`
	LegacyName     string `envconfig:"INVOICETRACK_DB_NAME"`
	LegacySSLMode  string `envconfig:"INVOICETRACK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"INVOICETRACK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"INVOICETRACK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"INVOICETRACK_DB_CONN_MAX_LIFETIME" default:"5m"`
	ConnMaxIdleTime time.Duration `envconfig:"INVOICETRACK_DB_CONN_MAX_IDLE_TIME" default:"5m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"INVOICETRACK_REDIS_URL" required:"true"`
	Address      string        `envconfig:"INVOICETRACK_REDIS_ADDR"`
	Password     string        `envconfig:"INVOICETRACK_REDIS_PASSWORD"`
	DB           int           `envconfig:"INVOICETRACK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"INVOICETRACK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"INVOICETRACK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"INVOICETRACK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"INVOICETRACK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"INVOICETRACK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"INVOICETRACK_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"INVOICETRACK_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"INVOICETRACK_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"INVOICETRACK_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

// IdentityConfig describes the external identity provider boundary. The
// provider authenticates the user and hands back a signed identity token;
// this service only verifies the signature and trusts the claims.
type IdentityConfig struct {
	Secret   string `envconfig:"INVOICETRACK_IDENTITY_SECRET" required:"true"`
	Issuer   string `envconfig:"INVOICETRACK_IDENTITY_ISSUER" required:"true"`
	LoginURL string `envconfig:"INVOICETRACK_IDENTITY_LOGIN_URL" required:"true"`
}

type StaticConfig struct {
	Dir       string `envconfig:"INVOICETRACK_STATIC_DIR" default:"./web"`
	IndexFile string `envconfig:"INVOICETRACK_STATIC_INDEX" default:"Index.html"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"INVOICETRACK_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
