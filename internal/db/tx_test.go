package db

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openPrefs(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE prefs (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)
	return db
}

func countPrefs(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM prefs`).Scan(&n))
	return n
}

func TestWithTx(t *testing.T) {
	fail := errors.New("boom")

	tests := []struct {
		name    string
		fn      func(tx *sql.Tx) error
		wantErr error
		want    int
	}{
		{
			name: "commits every statement",
			fn: func(tx *sql.Tx) error {
				for _, k := range []string{"theme", "icons"} {
					if _, err := tx.Exec(`INSERT INTO prefs VALUES (?, 'x')`, k); err != nil {
						return err
					}
				}
				return nil
			},
			want: 2,
		},
		{
			name: "rolls back when fn fails",
			fn: func(tx *sql.Tx) error {
				if _, err := tx.Exec(`INSERT INTO prefs VALUES ('theme', 'dark')`); err != nil {
					return err
				}
				return fail
			},
			wantErr: fail,
		},
		{
			name: "rolls back earlier statements on a constraint error",
			fn: func(tx *sql.Tx) error {
				if _, err := tx.Exec(`INSERT INTO prefs VALUES ('theme', 'dark')`); err != nil {
					return err
				}
				_, err := tx.Exec(`INSERT INTO prefs VALUES ('theme', 'light')`)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := openPrefs(t)
			err := WithTx(db, tt.fn)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.want == 0:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, countPrefs(t, db))
		})
	}
}
