package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	Storage     StorageConfig
	DB          DBConfig
	Redis       RedisConfig
	SQLite      SQLiteConfig
	S3          S3Config
	JWT         JWTConfig
	Appointment AppointmentConfig
}

type AppConfig struct {
	Port       string
	Env        string
	LogLevel   string
	SeedSample bool
	CORSOrigin string
}

// StorageConfig selects the key-value backend that holds every collection.
type StorageConfig struct {
	Driver    string // memory | redis | sqlite | postgres | s3
	KeyPrefix string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SQLiteConfig struct {
	Path string
}

type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	PathStyle       bool
	AccessKeyID     string
	SecretAccessKey string
}

type JWTConfig struct {
	Secret        string
	SessionExpiry time.Duration
}

type AppointmentConfig struct {
	TransitionPolicy string // strict | permissive
}

const (
	StorageDriverMemory   = "memory"
	StorageDriverRedis    = "redis"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
	StorageDriverS3       = "s3"
)

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads the given env file (if present) and overlays the
// process environment on top of it.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	sessionExpiry, err := time.ParseDuration(v.GetString("JWT_SESSION_EXPIRY"))
	if err != nil {
		sessionExpiry = 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:       v.GetString("APP_PORT"),
			Env:        v.GetString("APP_ENV"),
			LogLevel:   v.GetString("LOG_LEVEL"),
			SeedSample: v.GetBool("SEED_SAMPLE_DATA"),
			CORSOrigin: v.GetString("CORS_ALLOWED_ORIGIN"),
		},
		Storage: StorageConfig{
			Driver:    strings.ToLower(v.GetString("STORAGE_DRIVER")),
			KeyPrefix: v.GetString("STORAGE_KEY_PREFIX"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		SQLite: SQLiteConfig{
			Path: v.GetString("SQLITE_PATH"),
		},
		S3: S3Config{
			Bucket:          v.GetString("S3_BUCKET"),
			Region:          v.GetString("S3_REGION"),
			Endpoint:        v.GetString("S3_ENDPOINT"),
			PathStyle:       v.GetBool("S3_PATH_STYLE"),
			AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("S3_SECRET_ACCESS_KEY"),
		},
		JWT: JWTConfig{
			Secret:        v.GetString("JWT_SECRET"),
			SessionExpiry: sessionExpiry,
		},
		Appointment: AppointmentConfig{
			TransitionPolicy: strings.ToLower(v.GetString("APPOINTMENT_TRANSITION_POLICY")),
		},
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SEED_SAMPLE_DATA", true)
	v.SetDefault("CORS_ALLOWED_ORIGIN", "*")
	v.SetDefault("STORAGE_DRIVER", StorageDriverSQLite)
	v.SetDefault("STORAGE_KEY_PREFIX", "medcare_")
	v.SetDefault("SQLITE_PATH", "medcare.db")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("JWT_SECRET", "medcare-demo-secret")
	v.SetDefault("JWT_SESSION_EXPIRY", "24h")
	v.SetDefault("APPOINTMENT_TRANSITION_POLICY", "strict")
}
