package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

type healthRepository struct {
	db *sql.DB
}

func NewHealthRepository(db *sql.DB) ports.HealthChecker {
	return &healthRepository{db: db}
}

func (r *healthRepository) Check(ctx context.Context) (*domain.HealthReport, error) {
	if err := r.db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	tables := map[string]int64{}
	for _, table := range []string{"candidates", "voters", "vote_events", "admin_accounts"} {
		var count int64
		// Table names come from the fixed list above, never from input.
		if err := r.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)).Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		tables[table] = count
	}

	return &domain.HealthReport{
		Status:    "healthy",
		Database:  "connected",
		Tables:    tables,
		Timestamp: time.Now().UTC(),
	}, nil
}
