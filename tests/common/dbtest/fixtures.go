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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()
	return CreateTestUserWithPoints(t, db, email, role, 0)
}

func CreateTestUserWithPoints(t *testing.T, db DBLike, email, role string, points int32) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, points, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role, points)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestSkill(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	skillID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO skills (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING", skillID, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM skills WHERE name = $1", name).Scan(&skillID)
	}

	return skillID
}

func CreateTestOpportunity(t *testing.T, db DBLike, promoterID uuid.UUID, status string, maxVolunteers, pointsReward int32, start, end time.Time) uuid.UUID {
	t.Helper()

	opportunityID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO opportunities (id, promoter_id, title, description, location, start_date, end_date, max_volunteers, points_reward, status)
		VALUES ($1, $2, 'Beach Cleanup', 'Help clean the beach', 'Shonan', $3, $4, $5, $6, $7)`,
		opportunityID, promoterID, start, end, maxVolunteers, pointsReward, status)
	require.NoError(t, err)

	return opportunityID
}

func CreateTestReward(t *testing.T, db DBLike, title string, pointsCost int32, quantity *int32) uuid.UUID {
	t.Helper()

	rewardID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO rewards (id, title, description, reward_type, points_cost, quantity, is_active)
		VALUES ($1, $2, 'Test reward', 'voucher', $3, $4, true)`,
		rewardID, title, pointsCost, quantity)
	require.NoError(t, err)

	return rewardID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO skills (id, name) VALUES
		    (gen_random_uuid(), 'First Aid'),
		    (gen_random_uuid(), 'Translation'),
		    (gen_random_uuid(), 'Cooking')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
