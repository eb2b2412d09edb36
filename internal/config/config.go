package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverMemory = "memory"
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type MySQLConfig struct {
	Host string
	Port string
	DB   string
	User string
	Pass string
}

type StoreConfig struct {
	Driver     string
	SQLitePath string
	MySQL      MySQLConfig
	// Seed fills an empty database with the demo fixtures.
	Seed bool
}

type RedisConfig struct {
	Addr string
	DB   int
}

type AddressCacheConfig struct {
	TTL time.Duration
	// WarmSchedule is a six-field cron spec; empty disables warming.
	WarmSchedule string
}

// ClientConfig drives the resource client used by lisctl.
type ClientConfig struct {
	APIURL         string
	UseMock        bool
	FallbackToMock bool
	Timeout        time.Duration
}

type SearchConfig struct {
	Debounce  time.Duration
	BlurGrace time.Duration
}

type Config struct {
	Environment string
	AppPort     string
	LogLevel    string
	CORSOrigins []string

	Store        StoreConfig
	Redis        RedisConfig
	AddressCache AddressCacheConfig
	Client       ClientConfig
	Search       SearchConfig
}

// Load reads the environment, optionally backed by an app.env file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", DriverMemory)
	v.SetDefault("STORE_SEED", true)
	v.SetDefault("SQLITE_PATH", "lis.db")
	v.SetDefault("MYSQL_HOST", "mysql")
	v.SetDefault("MYSQL_PORT", "3306")
	v.SetDefault("MYSQL_DB", "lis")
	v.SetDefault("MYSQL_USER", "lis")
	v.SetDefault("ADDRESS_CACHE_TTL", 7*24*time.Hour)
	v.SetDefault("ADDRESS_WARM_SCHEDULE", "0 0 3 * * *")
	v.SetDefault("API_URL", "http://localhost:8080")
	v.SetDefault("SEARCH_DEBOUNCE", 280*time.Millisecond)
	v.SetDefault("SEARCH_BLUR_GRACE", 150*time.Millisecond)

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		AppPort:     v.GetString("APP_PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		CORSOrigins: parseList(v.GetString("CORS_ORIGINS")),
		Store: StoreConfig{
			Driver:     strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
			SQLitePath: v.GetString("SQLITE_PATH"),
			Seed:       v.GetBool("STORE_SEED"),
			MySQL: MySQLConfig{
				Host: v.GetString("MYSQL_HOST"),
				Port: v.GetString("MYSQL_PORT"),
				DB:   v.GetString("MYSQL_DB"),
				User: v.GetString("MYSQL_USER"),
				Pass: v.GetString("MYSQL_PASS"),
			},
		},
		Redis: RedisConfig{
			Addr: v.GetString("REDIS_ADDR"),
			DB:   v.GetInt("REDIS_DB"),
		},
		AddressCache: AddressCacheConfig{
			TTL:          v.GetDuration("ADDRESS_CACHE_TTL"),
			WarmSchedule: strings.TrimSpace(v.GetString("ADDRESS_WARM_SCHEDULE")),
		},
		Client: ClientConfig{
			APIURL:         strings.TrimRight(v.GetString("API_URL"), "/"),
			UseMock:        v.GetBool("USE_MOCK_DATA"),
			FallbackToMock: v.GetBool("API_FALLBACK_TO_MOCK"),
			Timeout:        v.GetDuration("API_TIMEOUT"),
		},
		Search: SearchConfig{
			Debounce:  v.GetDuration("SEARCH_DEBOUNCE"),
			BlurGrace: v.GetDuration("SEARCH_BLUR_GRACE"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	switch c.Store.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Store.SQLitePath == "" {
			return errors.New("missing SQLITE_PATH")
		}
	case DriverMySQL:
		m := c.Store.MySQL
		if m.Host == "" || m.Port == "" || m.DB == "" || m.User == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		if _, err := net.LookupPort("tcp", m.Port); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", m.Port, err)
		}
	default:
		return fmt.Errorf("invalid STORE_DRIVER %q (memory, mysql or sqlite)", c.Store.Driver)
	}
	if c.AddressCache.TTL <= 0 {
		return errors.New("ADDRESS_CACHE_TTL must be positive")
	}
	if c.Search.Debounce < 0 || c.Search.BlurGrace < 0 || c.Client.Timeout < 0 {
		return errors.New("durations must not be negative")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.Store.MySQL.Host, c.Store.MySQL.Port) }

func (c *Config) MySQLDSN() string {
	m := c.Store.MySQL
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4,utf8",
		m.User, m.Pass, c.mysqlAddr(), m.DB)
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
