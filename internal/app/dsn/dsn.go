package dsn

import (
	"fmt"
	"os"
	"strconv"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Params — параметры подключения к базе
type Params struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

// FromEnv читает DB_* переменные окружения; пустые значения заменяются значениями по умолчанию
func FromEnv() Params {
	p := Params{
		Driver:   getEnv("DB_DRIVER", DriverMySQL),
		Host:     getEnv("DB_HOST", "localhost"),
		User:     getEnv("DB_USER", "root"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     getEnv("DB_NAME", "leadflow"),
	}
	p.Port, _ = strconv.Atoi(os.Getenv("DB_PORT"))
	return p.withDefaults()
}

func (p Params) withDefaults() Params {
	if p.Driver == "" {
		p.Driver = DriverMySQL
	}
	if p.Port == 0 {
		p.Port = 3306
		if p.Driver == DriverPostgres {
			p.Port = 5432
		}
	}
	return p
}

// String собирает DSN в формате выбранного драйвера
func (p Params) String() string {
	p = p.withDefaults()
	switch p.Driver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			p.Host, p.Port, p.User, p.Password, p.Name)
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
			p.User, p.Password, p.Host, p.Port, p.Name)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
