package seed

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"collegegraph/internal/db"
)

// CreateDefaultData inserts a sample college with one student when the
// database is still empty. Intended for development setups; gated by the
// seed.enabled config flag in bootstrap.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var collegeCount int64
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM colleges`).Scan(&collegeCount); err != nil {
		return err
	}

	if collegeCount > 0 {
		lgr.Debug().Int64("colleges", collegeCount).Msg("Database already has data, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding sample data...")

	// One unit of work so a half-seeded database is impossible
	return db.WithTransaction(ctx, dbPool, func(ctx context.Context, tx pgx.Tx) error {
		var collegeID int64
		err := tx.QueryRow(ctx,
			`INSERT INTO colleges (name, location) VALUES ($1, $2) RETURNING id`,
			"Stanford", "California").Scan(&collegeID)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO students (name, age, college_id) VALUES ($1, $2, $3)`,
			"Alice", 21, collegeID)
		return err
	})
}
