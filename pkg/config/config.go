package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Images       ImagesConfig
	Shelter      ShelterConfig
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
	Env          string `envconfig:"PETADOPTION_APP_ENV" required:"true"`
	Port         string `envconfig:"PETADOPTION_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"PETADOPTION_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PETADOPTION_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"PETADOPTION_DB_DSN"`
	Driver string `envconfig:"PETADOPTION_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"PETADOPTION_DB_HOST"`
	LegacyPort     int    `envconfig:"PETADOPTION_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"PETADOPTION_DB_USER"`
	LegacyPassword string `envconfig:"PETADOPTION_DB_PASSWORD"`
	LegacyName     string `envconfig:"PETADOPTION_DB_NAME"`
	LegacySSLMode  string `envconfig:"PETADOPTION_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"PETADOPTION_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"PETADOPTION_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"PETADOPTION_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PETADOPTION_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// ImagesConfig holds the two filesystem roots for pet images. Pending
// submissions land in PendingDir; approval promotes the file into ApprovedDir.
type ImagesConfig struct {
	PendingDir  string `envconfig:"PETADOPTION_IMAGES_PENDING_DIR" required:"true"`
	ApprovedDir string `envconfig:"PETADOPTION_IMAGES_APPROVED_DIR" required:"true"`
}

// EnsureDirs creates both image roots if missing. Called at process start so a
// misconfigured deployment fails before serving traffic.
func (i ImagesConfig) EnsureDirs() error {
	var errs error
	for _, dir := range []string{i.PendingDir, i.ApprovedDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("image root %q: %w", dir, err))
		}
	}
	return errs
}

type ShelterConfig struct {
	DefaultShelterID int64 `envconfig:"PETADOPTION_DEFAULT_SHELTER_ID" default:"1"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"PETADOPTION_AUTO_MIGRATE" default:"false"`
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
