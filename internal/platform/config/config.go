package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Server  ServerConfig
	Log     LogConfig
	Storage StorageConfig
	Client  ClientConfig
}

type AppConfig struct {
	Name string
}

type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// SessionTTL es el tiempo sin uso tras el cual expira una sesión de navegación.
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

type LogConfig struct {
	Level  string
	Format string
}

// Driver de storage para el repo de mascotas.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type StorageConfig struct {
	Driver     string
	DSN        string
	SQLitePath string `mapstructure:"sqlite_path"`

	// AutoMigrate aplica las migraciones al arrancar (postgres/sqlite).
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// ClientConfig lo usa el CLI para hablar con un server ya levantado.
type ClientConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration
}

// Load lee defaults, archivo opcional y env.
//   - archivo: PETADOPT_CONFIG, o ./petadopt.(yaml|toml|json)
//   - env: PETADOPT_<SECCION>_<CLAVE>, p.ej. PETADOPT_STORAGE_DRIVER
//   - env heredadas: PORT, DB_DSN, LOG_LEVEL, LOG_FORMAT, APP_NAME
func Load() (Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	v.SetDefault("app.name", "pet-adoption")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.session_ttl", 30*time.Minute)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("storage.dsn", "")
	v.SetDefault("storage.sqlite_path", "pet-adoption.db")
	v.SetDefault("storage.auto_migrate", true)
	v.SetDefault("client.base_url", "")
	v.SetDefault("client.timeout", 10*time.Second)

	if path := os.Getenv("PETADOPT_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("petadopt")
	}

	v.SetEnvPrefix("PETADOPT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	legacy := map[string]string{
		"storage.dsn": "DB_DSN",
		"log.level":   "LOG_LEVEL",
		"log.format":  "LOG_FORMAT",
		"app.name":    "APP_NAME",
	}
	for key, env := range legacy {
		if err := v.BindEnv(key, "PETADOPT_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	// PORT (heredado) solo aplica si server.addr no se configuró
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		if os.Getenv("PETADOPT_SERVER_ADDR") == "" && !v.InConfig("server.addr") {
			c.Server.Addr = ":" + port
		}
	}

	// con DSN y sin driver explícito, se asume postgres
	if c.Storage.DSN != "" && os.Getenv("PETADOPT_STORAGE_DRIVER") == "" && !v.InConfig("storage.driver") {
		c.Storage.Driver = DriverPostgres
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Server.SessionTTL < 0 {
		return fmt.Errorf("server.session_ttl must not be negative")
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverPostgres:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return fmt.Errorf("storage.dsn required for driver %q", c.Storage.Driver)
		}
	case DriverSQLite:
		if strings.TrimSpace(c.Storage.SQLitePath) == "" {
			return fmt.Errorf("storage.sqlite_path required for driver %q", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}
	return nil
}
