package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.Driver != DriverMemory || cfg.AppPort != "8080" || cfg.Environment != "development" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.AddressCache.TTL != 7*24*time.Hour {
		t.Fatalf("ttl = %v", cfg.AddressCache.TTL)
	}
	if cfg.Search.Debounce != 280*time.Millisecond || cfg.Search.BlurGrace != 150*time.Millisecond {
		t.Fatalf("search timings = %+v", cfg.Search)
	}
	if cfg.Client.FallbackToMock {
		t.Fatalf("fallback must be off by default")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "MySQL")
	t.Setenv("MYSQL_HOST", "db")
	t.Setenv("MYSQL_PORT", "3307")
	t.Setenv("MYSQL_DB", "lis")
	t.Setenv("MYSQL_USER", "admin")
	t.Setenv("MYSQL_PASS", "secret")
	t.Setenv("CORS_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("API_FALLBACK_TO_MOCK", "true")
	t.Setenv("API_TIMEOUT", "5s")
	t.Setenv("API_URL", "http://api.test/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.Driver != DriverMySQL {
		t.Fatalf("driver = %q", cfg.Store.Driver)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("origins = %v", cfg.CORSOrigins)
	}
	if !cfg.Client.FallbackToMock || cfg.Client.Timeout != 5*time.Second || cfg.Client.APIURL != "http://api.test" {
		t.Fatalf("client = %+v", cfg.Client)
	}
	dsn := cfg.MySQLDSN()
	if !strings.HasPrefix(dsn, "admin:secret@tcp(db:3307)/lis?") || !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("dsn = %q", dsn)
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			AppPort:      "8080",
			Store:        StoreConfig{Driver: DriverMemory},
			AddressCache: AddressCacheConfig{TTL: time.Hour},
		}
	}
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"memory ok", func(*Config) {}, ""},
		{"missing port", func(c *Config) { c.AppPort = "" }, "APP_PORT"},
		{"unknown driver", func(c *Config) { c.Store.Driver = "postgres" }, "STORE_DRIVER"},
		{"sqlite without path", func(c *Config) { c.Store.Driver = DriverSQLite }, "SQLITE_PATH"},
		{"mysql missing host", func(c *Config) {
			c.Store.Driver = DriverMySQL
			c.Store.MySQL = MySQLConfig{Port: "3306", DB: "lis", User: "u"}
		}, "MySQL"},
		{"mysql bad port", func(c *Config) {
			c.Store.Driver = DriverMySQL
			c.Store.MySQL = MySQLConfig{Host: "h", Port: "nope-port", DB: "lis", User: "u"}
		}, "MYSQL_PORT"},
		{"zero ttl", func(c *Config) { c.AddressCache.TTL = 0 }, "ADDRESS_CACHE_TTL"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}
