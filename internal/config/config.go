package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database      DatabaseConfig      `yaml:"database"`
	DocumentStore DocumentStoreConfig `yaml:"document_store"`
	VisitLog      VisitLogConfig      `yaml:"visit_log"`
	Log           LogConfig           `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings for the primary
// relational data model.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// DocumentStoreConfig holds MongoDB connection settings for the visit log
// collection. The default collection name follows the persistence record.
type DocumentStoreConfig struct {
	URI            string        `yaml:"uri"             env:"DOCSTORE_URI"             env-required:"true"`
	Database       string        `yaml:"database"        env:"DOCSTORE_DATABASE"        env-default:"petclinic"`
	Collection     string        `yaml:"collection"      env:"DOCSTORE_COLLECTION"      env-default:"visitLogDocument"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"DOCSTORE_CONNECT_TIMEOUT" env-default:"10s"`
}

// VisitLogConfig holds visit log service settings.
type VisitLogConfig struct {
	// LazyVisitResolution controls how translated records reference their
	// parent visit. When true (default) the visit is loaded on first access;
	// when false it is loaded eagerly on each translation.
	LazyVisitResolution bool `yaml:"lazy_visit_resolution" env:"VISITLOG_LAZY_VISIT_RESOLUTION" env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
