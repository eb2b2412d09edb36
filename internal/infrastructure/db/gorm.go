package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type options struct {
	log      zerolog.Logger
	level    logger.LogLevel
	maxOpen  int
	maxIdle  int
	lifetime time.Duration
	idleTime time.Duration
}

type Option func(*options)

// WithLogger routes gorm's SQL log through zerolog at the given level
// (silent, error, warn or info).
func WithLogger(l zerolog.Logger, level string) Option {
	return func(o *options) {
		o.log = l
		o.level = parseLevel(level)
	}
}

func WithMaxOpenConns(n int) Option { return func(o *options) { o.maxOpen = n } }

// OpenGorm opens a mysql or sqlite database and pings it.
func OpenGorm(driver, dsn string, opts ...Option) (*gorm.DB, error) {
	switch strings.ToLower(driver) {
	case "mysql":
		return OpenGormWithDialector(mysql.Open(dsn), opts...)
	case "sqlite":
		// one writer at a time; also keeps :memory: on a single connection
		return OpenGormWithDialector(sqlite.Open(dsn), append([]Option{WithMaxOpenConns(1)}, opts...)...)
	}
	return nil, fmt.Errorf("db: unsupported driver %q", driver)
}

func OpenGormWithDialector(dial gorm.Dialector, opts ...Option) (*gorm.DB, error) {
	o := options{
		log:      zerolog.Nop(),
		level:    logger.Warn,
		maxOpen:  30,
		maxIdle:  10,
		lifetime: 30 * time.Minute,
		idleTime: 10 * time.Minute,
	}
	for _, fn := range opts {
		fn(&o)
	}

	cfg := &gorm.Config{
		Logger: logger.New(zerologWriter{o.log}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  o.level,
			IgnoreRecordNotFoundError: true,
		}),
		DisableAutomaticPing: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(o.maxOpen)
	sqlDB.SetMaxIdleConns(min(o.maxIdle, o.maxOpen))
	sqlDB.SetConnMaxLifetime(o.lifetime)
	sqlDB.SetConnMaxIdleTime(o.idleTime)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	o.log.Info().Str("dialect", dial.Name()).Msg("gorm: connected")
	return db, nil
}

type zerologWriter struct{ log zerolog.Logger }

func (w zerologWriter) Printf(format string, args ...any) {
	w.log.Debug().Msgf(format, args...)
}

func parseLevel(s string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info", "debug":
		return logger.Info
	}
	return logger.Warn
}
