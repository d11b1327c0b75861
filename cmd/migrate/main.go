package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"leadflow/internal/app/dsn"
	"leadflow/internal/app/repository"
)

func main() {
	// Загрузка переменных окружения из .env файла
	_ = godotenv.Load()

	params := dsn.FromEnv()
	if params.Driver != dsn.DriverMySQL && params.Driver != dsn.DriverPostgres {
		logrus.Fatalf("Unsupported DB_DRIVER %q. Check your .env file", params.Driver)
	}

	db, err := gorm.Open(repository.Dialector(params), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	logrus.WithField("driver", params.Driver).Info("Connected to database successfully")

	if err := repository.Migrate(db); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Database migration completed successfully")
}
