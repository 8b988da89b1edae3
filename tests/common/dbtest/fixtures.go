//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hotel-admin/internal/pkg/dateonly"
	"hotel-admin/internal/pkg/password"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const DefaultPassword = "password123"

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var fixtureHasher = password.NewBcryptHasherWithCost(bcrypt.MinCost)

func CreateTestUser(t *testing.T, db DBLike, username, plain string) int64 {
	t.Helper()

	hash, err := fixtureHasher.Hash(plain)
	require.NoError(t, err)

	var id int64
	err = db.QueryRow(context.Background(),
		`INSERT INTO users (username, password_hash) VALUES ($1, $2)
		 ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
		 RETURNING id`,
		username, hash).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestHotel(t *testing.T, db DBLike, name, location string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO hotels (name, location, is_active) VALUES ($1, $2, true) RETURNING id",
		name, location).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestRoomType(t *testing.T, db DBLike, hotelID int64, name string, baseRate float64) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO room_types (hotel_id, name, base_rate) VALUES ($1, $2, $3) RETURNING id",
		hotelID, name, baseRate).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestRateAdjustment(t *testing.T, db DBLike, roomTypeID int64, amount float64, on dateonly.Date, reason string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO rate_adjustments (room_type_id, adjustment_amount, effective_date, reason)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		roomTypeID, amount, on.Time(), reason).Scan(&id)
	require.NoError(t, err)
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and restarts identities
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
