package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"leadflow/internal/app/ds"
	"leadflow/internal/app/dsn"
)

// MaxOpenConns — размер общего пула соединений процесса
const MaxOpenConns = 10

type Repository struct {
	db *gorm.DB

	mu       sync.Mutex
	migrated bool
}

// New открывает базу без проверки соединения: если база недоступна при старте,
// ошибка вернется из первого запроса, а схема будет создана при первом успешном
func New(dialector gorm.Dialector) (*Repository, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(MaxOpenConns)
	sqlDB.SetMaxIdleConns(MaxOpenConns)

	r := &Repository{db: db}
	if err := r.ensureSchema(context.Background()); err != nil {
		logrus.Warn("database is not ready, schema will be created on first request: ", err)
	}
	return r, nil
}

// Open выбирает диалект по DB_DRIVER
func Open(p dsn.Params) (*Repository, error) {
	return New(Dialector(p))
}

func Dialector(p dsn.Params) gorm.Dialector {
	if p.Driver == dsn.DriverPostgres {
		return postgres.Open(p.String())
	}
	// без SELECT VERSION() при открытии: база может быть еще недоступна
	return mysql.New(mysql.Config{DSN: p.String(), SkipInitializeWithVersion: true})
}

// Migrate создает или обновляет таблицу submissions
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&ds.Submission{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (r *Repository) ensureSchema(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.migrated {
		return nil
	}
	if err := Migrate(r.db.WithContext(ctx)); err != nil {
		return err
	}
	r.migrated = true
	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
