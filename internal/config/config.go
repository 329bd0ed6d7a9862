package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Snapshot   SnapshotConfig
	Database   DatabaseConfig
	S3         S3Config
	Kubernetes KubernetesConfig
	Metrics    MetricsConfig
	Simulator  SimulatorConfig
}

type ServerConfig struct {
	Host    string
	Port    int
	GinMode string
}

type LoggerConfig struct {
	Level  string
	Format string
}

// SnapshotConfig selects the local snapshot sinks. An empty path disables
// the sink.
type SnapshotConfig struct {
	FilePath   string
	SQLitePath string
}

type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type S3Config struct {
	Enabled   bool
	Bucket    string
	Region    string
	Endpoint  string
	Key       string
	PathStyle bool
}

type KubernetesConfig struct {
	Enabled          bool
	InCluster        bool
	KubeConfigPath   string
	DefaultNS        string
	StorageURIPrefix string
}

type MetricsConfig struct {
	Enabled bool
}

type SimulatorConfig struct {
	// Seed fixes the metric sampler; 0 seeds from the clock.
	Seed uint64
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8000)
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	v.SetDefault("SNAPSHOT_FILE_PATH", "data/database.json")
	v.SetDefault("SNAPSHOT_SQLITE_PATH", "")

	v.SetDefault("DB_ENABLED", false)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "ml_platform")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 5)
	v.SetDefault("DB_MAX_IDLE_CONNS", 1)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")

	v.SetDefault("S3_ENABLED", false)
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_KEY", "snapshots/database.json")
	v.SetDefault("S3_PATH_STYLE", false)

	v.SetDefault("K8S_ENABLED", false)
	v.SetDefault("K8S_IN_CLUSTER", false)
	v.SetDefault("K8S_NAMESPACE", "model-serving")
	v.SetDefault("K8S_STORAGE_URI_PREFIX", "s3://ml-platform/models")

	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("RANDOM_SEED", 0)

	// Env
	v.AutomaticEnv()

	lifetime, err := time.ParseDuration(v.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		lifetime = 30 * time.Minute
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:    v.GetString("SERVER_HOST"),
			Port:    v.GetInt("SERVER_PORT"),
			GinMode: v.GetString("GIN_MODE"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Snapshot: SnapshotConfig{
			FilePath:   v.GetString("SNAPSHOT_FILE_PATH"),
			SQLitePath: v.GetString("SNAPSHOT_SQLITE_PATH"),
		},
		Database: DatabaseConfig{
			Enabled:         v.GetBool("DB_ENABLED"),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: lifetime,
		},
		S3: S3Config{
			Enabled:   v.GetBool("S3_ENABLED"),
			Bucket:    v.GetString("S3_BUCKET"),
			Region:    v.GetString("S3_REGION"),
			Endpoint:  v.GetString("S3_ENDPOINT"),
			Key:       v.GetString("S3_KEY"),
			PathStyle: v.GetBool("S3_PATH_STYLE"),
		},
		Kubernetes: KubernetesConfig{
			Enabled:          v.GetBool("K8S_ENABLED"),
			InCluster:        v.GetBool("K8S_IN_CLUSTER"),
			KubeConfigPath:   v.GetString("K8S_KUBECONFIG"),
			DefaultNS:        v.GetString("K8S_NAMESPACE"),
			StorageURIPrefix: v.GetString("K8S_STORAGE_URI_PREFIX"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
		Simulator: SimulatorConfig{
			Seed: v.GetUint64("RANDOM_SEED"),
		},
	}

	return cfg, nil
}
