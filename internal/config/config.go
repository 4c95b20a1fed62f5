package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverOracle   = "oracle"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// 드라이버별 기본 포트 (DB_PORT 미지정 시)
var defaultPorts = map[string]int{
	DriverOracle:   1521,
	DriverPostgres: 5432,
}

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	CORS     CORSConfig
	Server   ServerConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port int
}

type DatabaseConfig struct {
	Driver          string // oracle | postgres | sqlite
	Host            string
	Port            int
	Service         string // oracle: service name, postgres: database name, sqlite: file path
	SSL             bool
	User            string
	Password        string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SlowThreshold   time.Duration
	IsAutoMigrate   bool // true: 테이블 재생성, false: 마이그레이션 비활성화
}

type JWTConfig struct {
	Secret        string
	Expiry        time.Duration
	RefreshExpiry time.Duration
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type ServerConfig struct {
	RequestTimeout  time.Duration // handler + DB query deadline
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	GracefulTimeout time.Duration
}

// Load reads .env.<env> (if present) and the process environment.
// Malformed values are reported together with the validation errors.
func Load(env string) (*Config, error) {
	if err := loadEnvFile(env); err != nil {
		return nil, fmt.Errorf("환경 변수 로드 실패: %w", err)
	}

	r := &envReader{}
	driver := strings.ToLower(r.String("DB_DRIVER", DriverOracle))

	cfg := &Config{
		App: AppConfig{
			Name: r.String("APP_NAME", "jpashop-api"),
			Env:  env,
			Port: r.Int("APP_PORT", 8080),
		},
		Database: DatabaseConfig{
			Driver:          driver,
			Host:            r.String("DB_HOST", ""),
			Port:            r.Int("DB_PORT", defaultPorts[driver]),
			Service:         r.String("DB_SERVICE", ""),
			SSL:             r.Bool("DB_SSL", true),
			User:            r.String("DB_USER", ""),
			Password:        r.String("DB_PASSWORD", ""),
			MaxIdleConns:    r.Int("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    r.Int("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: r.Duration("DB_CONN_MAX_LIFETIME", time.Hour),
			ConnMaxIdleTime: r.Duration("DB_CONN_MAX_IDLE_TIME", 10*time.Minute),
			SlowThreshold:   r.Duration("DB_SLOW_THRESHOLD", 200*time.Millisecond),
			IsAutoMigrate:   r.Bool("DB_AUTO_MIGRATE", false), // 기본값: false (안전)
		},
		JWT: JWTConfig{
			Secret:        r.String("JWT_SECRET", ""),
			Expiry:        r.Duration("JWT_EXPIRY", 24*time.Hour),
			RefreshExpiry: r.Duration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		CORS: CORSConfig{
			AllowedOrigins:   r.Slice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   r.Slice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
			AllowedHeaders:   r.Slice("CORS_ALLOWED_HEADERS", []string{"*"}),
			AllowCredentials: r.Bool("CORS_ALLOW_CREDENTIALS", true),
			MaxAge:           r.Int("CORS_MAX_AGE", 86400),
		},
		Server: ServerConfig{
			RequestTimeout:  r.Duration("SERVER_REQUEST_TIMEOUT", 30*time.Second),
			ReadTimeout:     r.Duration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    r.Duration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:     r.Duration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			GracefulTimeout: r.Duration("GRACEFUL_TIMEOUT", 30*time.Second),
		},
	}

	problems := append(r.problems, cfg.problems()...)
	if len(problems) > 0 {
		return nil, fmt.Errorf("환경 변수 검증 실패 : %w", joinProblems(problems))
	}

	return cfg, nil
}

func loadEnvFile(env string) error {
	envFile := fmt.Sprintf(".env.%s", env)

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		slog.Warn("환경 변수 파일을 찾을 수 없습니다. 시스템 환경 변수를 사용합니다.",
			"file", envFile)
		return nil
	}

	// 이미 설정된 시스템 환경 변수가 우선
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("환경 변수 파일 로드 오류: %s: %w", envFile, err)
	}

	absPath, _ := filepath.Abs(envFile)
	slog.Info("환경 변수 파일 로드", "file", absPath)
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "local" || c.App.Env == "dev" || c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "prod" || c.App.Env == "production"
}
