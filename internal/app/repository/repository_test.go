package repository

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"leadflow/internal/app/ds"
	"leadflow/internal/app/dsn"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(sqlite.Open(filepath.Join(t.TempDir(), "leads.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestCreateAndListSubmissions(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	older := &ds.Submission{
		SubmissionID: ds.NewSubmissionID(base),
		CompanyName:  "Acme",
		SubmittedAt:  base,
		Data:         datatypes.JSON(`{"formType":"consulting"}`),
	}
	newer := &ds.Submission{
		SubmissionID: ds.NewSubmissionID(base.Add(time.Minute)),
		CompanyName:  "Globex",
		SubmittedAt:  base.Add(time.Minute),
		Data:         datatypes.JSON(`{"formType":"business-case","participants":20}`),
		Pricing:      datatypes.JSON(`{"totalInvestment":1000}`),
	}
	require.NoError(t, repo.CreateSubmission(ctx, older))
	require.NoError(t, repo.CreateSubmission(ctx, newer))

	list, err := repo.ListSubmissions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.SubmissionID, list[0].SubmissionID)
	assert.Equal(t, older.SubmissionID, list[1].SubmissionID)
	assert.JSONEq(t, `{"formType":"business-case","participants":20}`, string(list[0].Data))
	assert.JSONEq(t, `{"totalInvestment":1000}`, string(list[0].Pricing))
	assert.Empty(t, list[1].Pricing)
	assert.False(t, list[0].CreatedAt.IsZero())
}

func TestCreateSubmission_DuplicateID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	s := ds.Submission{SubmissionID: "SUB-1-AAAAAAAAA", SubmittedAt: time.Now(), Data: datatypes.JSON(`{}`)}

	first := s
	require.NoError(t, repo.CreateSubmission(ctx, &first))
	second := s
	assert.Error(t, repo.CreateSubmission(ctx, &second))
}

func TestListSubmissions_Empty(t *testing.T) {
	list, err := newTestRepo(t).ListSubmissions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDescribeError(t *testing.T) {
	refused := fmt.Errorf("dial: %w", &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)})

	cases := []struct {
		err  error
		want string
	}{
		{refused, MsgConnectionRefused},
		{&mysql.MySQLError{Number: 1045, Message: "Access denied"}, MsgAccessDenied},
		{fmt.Errorf("open: %w", &mysql.MySQLError{Number: 1049}), MsgUnknownDatabase},
		{&pgconn.PgError{Code: "28P01"}, MsgAccessDenied},
		{&pgconn.PgError{Code: "3D000"}, MsgUnknownDatabase},
		{&mysql.MySQLError{Number: 1062}, MsgSaveFailed},
		{fmt.Errorf("boom"), MsgSaveFailed},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DescribeError(tc.err, MsgSaveFailed), tc.err.Error())
	}
}

func TestDialector(t *testing.T) {
	assert.Equal(t, "mysql", Dialector(dsn.Params{Driver: "mysql"}).Name())
	assert.Equal(t, "postgres", Dialector(dsn.Params{Driver: "postgres"}).Name())
}
