package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Invite        InviteConfig
	Media         MediaConfig
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
	Env          string `envconfig:"WEDDINGMOA_APP_ENV" required:"true"`
	Port         string `envconfig:"WEDDINGMOA_APP_PORT" default:"8080"`
	BaseURL      string `envconfig:"WEDDINGMOA_APP_BASE_URL" default:"http://localhost:3000"`
	LogLevel     string `envconfig:"WEDDINGMOA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"WEDDINGMOA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"WEDDINGMOA_DB_DSN"`

	Host     string `envconfig:"WEDDINGMOA_DB_HOST"`
	Port     int    `envconfig:"WEDDINGMOA_DB_PORT" default:"5432"`
	User     string `envconfig:"WEDDINGMOA_DB_USER"`
	Password string `envconfig:"WEDDINGMOA_DB_PASSWORD"`
	Name     string `envconfig:"WEDDINGMOA_DB_NAME"`
	SSLMode  string `envconfig:"WEDDINGMOA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"WEDDINGMOA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"WEDDINGMOA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"WEDDINGMOA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"WEDDINGMOA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (d *DBConfig) ensureDSN() error {
	if d.DSN != "" {
		return nil
	}
	if d.Host == "" || d.User == "" || d.Name == "" {
		return fmt.Errorf("either WEDDINGMOA_DB_DSN or host/user/name parts are required")
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   "/" + d.Name,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	d.DSN = u.String()
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"WEDDINGMOA_REDIS_URL"`
	Address      string        `envconfig:"WEDDINGMOA_REDIS_ADDR"`
	Password     string        `envconfig:"WEDDINGMOA_REDIS_PASSWORD"`
	DB           int           `envconfig:"WEDDINGMOA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"WEDDINGMOA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"WEDDINGMOA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"WEDDINGMOA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"WEDDINGMOA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"WEDDINGMOA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"WEDDINGMOA_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"WEDDINGMOA_JWT_ISSUER" default:"weddingmoa"`
	ExpirationMinutes      int    `envconfig:"WEDDINGMOA_JWT_EXPIRATION_MINUTES" default:"30"`
	RefreshTokenTTLMinutes int    `envconfig:"WEDDINGMOA_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"WEDDINGMOA_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"WEDDINGMOA_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"WEDDINGMOA_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"WEDDINGMOA_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"WEDDINGMOA_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"WEDDINGMOA_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"WEDDINGMOA_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"WEDDINGMOA_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"WEDDINGMOA_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"WEDDINGMOA_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"WEDDINGMOA_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"WEDDINGMOA_AUTO_MIGRATE" default:"false"`
}

type InviteConfig struct {
	DefaultExpiryDays int `envconfig:"WEDDINGMOA_INVITE_DEFAULT_EXPIRY_DAYS" default:"7"`
	MaxExpiryDays     int `envconfig:"WEDDINGMOA_INVITE_MAX_EXPIRY_DAYS" default:"90"`
}

type MediaConfig struct {
	UploadDir    string `envconfig:"WEDDINGMOA_MEDIA_UPLOAD_DIR" default:"./uploads"`
	PublicPrefix string `envconfig:"WEDDINGMOA_MEDIA_PUBLIC_PREFIX" default:"/uploads"`
	MaxSizeBytes int64  `envconfig:"WEDDINGMOA_MEDIA_MAX_SIZE_BYTES" default:"10485760"`
}
