package repository

import (
	"errors"
	"syscall"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	MsgConnectionRefused = "Database connection refused. Please check that the database server is running."
	MsgAccessDenied      = "Database access denied. Please check the database credentials."
	MsgUnknownDatabase   = "Database does not exist. Please create the database first."
	MsgSaveFailed        = "Failed to save submission"
)

// DescribeError переводит ошибку драйвера в понятное сообщение;
// fallback возвращается для всех прочих ошибок
func DescribeError(err error, fallback string) string {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return MsgConnectionRefused
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1044, 1045:
			return MsgAccessDenied
		case 1049:
			return MsgUnknownDatabase
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "28P01", "28000":
			return MsgAccessDenied
		case "3D000":
			return MsgUnknownDatabase
		}
	}

	return fallback
}
