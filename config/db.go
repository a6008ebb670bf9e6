package config

import (
	"fmt"
	"os"
)

const (
	EnvHost     = "DB_HOST"
	EnvPort     = "DB_PORT"
	EnvName     = "DB_NAME"
	EnvUser     = "DB_USER"
	EnvPassword = "DB_PASSWORD"
)

// DBConfig describes how to reach the music database.
type DBConfig struct {
	Host     string
	Port     string
	DBName   string
	User     string
	Password string
}

// Default connection values, used per field when its variable is unset
var DefaultDBConfig = DBConfig{
	Host:     "localhost",
	Port:     "5432",
	DBName:   "music_db",
	User:     "postgres",
	Password: "postgres",
}

// NewDBConfig resolves a DBConfig from the environment. Set values are taken
// as-is, including empty strings.
func NewDBConfig() DBConfig {
	return DBConfig{
		Host:     getenv(EnvHost, DefaultDBConfig.Host),
		Port:     getenv(EnvPort, DefaultDBConfig.Port),
		DBName:   getenv(EnvName, DefaultDBConfig.DBName),
		User:     getenv(EnvUser, DefaultDBConfig.User),
		Password: getenv(EnvPassword, DefaultDBConfig.Password),
	}
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// ConnString returns the key=value DSN understood by pgx. Values are not
// quoted, so a value containing spaces or quotes yields a broken DSN.
func (c DBConfig) ConnString() string {
	return fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s",
		c.Host, c.Port, c.DBName, c.User, c.Password)
}
