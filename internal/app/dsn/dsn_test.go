package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString_MySQL(t *testing.T) {
	p := Params{Host: "db", User: "app", Password: "s3cret", Name: "leads"}
	assert.Equal(t, "app:s3cret@tcp(db:3306)/leads?charset=utf8mb4&parseTime=true&loc=UTC", p.String())
}

func TestString_Postgres(t *testing.T) {
	p := Params{Driver: DriverPostgres, Host: "pg", Port: 6543, User: "app", Password: "pw", Name: "leads"}
	assert.Equal(t, "host=pg port=6543 user=app password=pw dbname=leads sslmode=disable TimeZone=UTC", p.String())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "pg.internal")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "crm")
	t.Setenv("DB_PORT", "")

	p := FromEnv()
	assert.Equal(t, Params{Driver: "postgres", Host: "pg.internal", Port: 5432, User: "svc", Password: "pw", Name: "crm"}, p)
}
