package config

import (
	"fmt"
	"os"
)

type Config struct {
	DBUrl      string
	JWTSecret  string
	ServerPort string

	RedisURL string

	BackupDir string
	UploadDir string

	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
}

func Load() *Config {
	return &Config{
		// DSN postgres:// liga o driver Postgres; qualquer outro
		// valor é tratado como caminho de arquivo SQLite.
		DBUrl:      getEnv("DATABASE_URL", "salon.db"),
		JWTSecret:  getEnv("JWT_SECRET", "lumiere-salon-secret-key-change-in-production"),
		ServerPort: getEnv("SERVER_PORT", "3000"),

		RedisURL: getEnv("REDIS_URL", ""),

		BackupDir: getEnv("BACKUP_DIR", "backups"),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		S3Region:    getEnv("S3_REGION", ""),
		S3Bucket:    getEnv("S3_BUCKET", ""),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) HasS3() bool {
	return c.S3Bucket != ""
}
