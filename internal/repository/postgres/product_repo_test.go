package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRows struct {
	rows [][]any
	i    int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.i >= len(r.rows) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Values() ([]any, error) {
	return r.rows[r.i-1], nil
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.i-1]
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = row[i].(string)
		case **time.Time:
			if row[i] == nil {
				*p = nil
				continue
			}
			ts := row[i].(time.Time)
			*p = &ts
		default:
			return errors.New("unexpected scan target")
		}
	}
	return nil
}

type fakeQuerier struct {
	rows *fakeRows
	err  error
	sql  string
}

func (q *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sql = sql
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func TestProductRepoListProductPages(t *testing.T) {
	updated := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	q := &fakeQuerier{rows: &fakeRows{rows: [][]any{
		{"a1", "Dolomit", updated, "https://cdn.kamenpro.net/dolomit.jpg", "Dolomit bijeli"},
		{"b2", "Rustik", nil, "", ""},
	}}}

	repo := NewProductRepositoryWithQuerier(q)
	assert.Equal(t, "postgres", repo.Name())

	pages, err := repo.ListProductPages(context.Background())
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "a1", pages[0].ID)
	assert.Equal(t, updated, pages[0].UpdatedAt)
	assert.Equal(t, "Dolomit bijeli", pages[0].ImageTitle)
	assert.True(t, pages[1].UpdatedAt.IsZero())
	assert.Contains(t, q.sql, "FROM proizvodi p")
}

func TestProductRepoErrors(t *testing.T) {
	_, err := NewProductRepositoryWithQuerier(&fakeQuerier{err: errors.New("connection refused")}).
		ListProductPages(context.Background())
	assert.ErrorContains(t, err, "connection refused")

	_, err = NewProductRepositoryWithQuerier(&fakeQuerier{rows: &fakeRows{err: errors.New("conn reset")}}).
		ListProductPages(context.Background())
	assert.ErrorContains(t, err, "conn reset")
}
