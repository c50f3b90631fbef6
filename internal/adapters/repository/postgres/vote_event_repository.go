package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

const pqUniqueViolation = "23505"

type voteEventRepository struct {
	db *sql.DB
}

func NewVoteEventRepository(db *sql.DB) ports.VoteEventRepository {
	return &voteEventRepository{db: db}
}

// Record applies a vote in one transaction. The conditional voter update is
// the linearization point: of any number of concurrent attempts for the same
// voter, exactly one matches a row with has_voted = FALSE; the rest roll back
// with domain.ErrAlreadyVoted and leave no trace. The UNIQUE constraint on
// vote_events.voter_id catches the same condition at the event insert.
func (r *voteEventRepository) Record(ctx context.Context, voter *domain.Voter, candidateID int64, castAt time.Time) (*domain.Candidate, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO voters (id, name, email, has_voted)
		VALUES ($1, $2, $3, FALSE)
		ON CONFLICT (id) DO NOTHING
	`, voter.ID, voter.Name, voter.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to register voter: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE voters
		SET has_voted = TRUE, vote_time = $2
		WHERE id = $1 AND has_voted = FALSE
	`, voter.ID, castAt)
	if err != nil {
		return nil, fmt.Errorf("failed to mark voter: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrAlreadyVoted
	}

	candidate := &domain.Candidate{}
	err = tx.QueryRowContext(ctx, `
		UPDATE candidates
		SET votes = votes + 1
		WHERE id = $1
		RETURNING id, name, party, bio, color, avatar, image_url, votes
	`, candidateID).Scan(
		&candidate.ID, &candidate.Name, &candidate.Party, &candidate.Bio,
		&candidate.Color, &candidate.Avatar, &candidate.ImageURL, &candidate.Votes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to increment tally: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO vote_events (voter_id, candidate_id, cast_at)
		VALUES ($1, $2, $3)
	`, voter.ID, candidateID, castAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyVoted
		}
		return nil, fmt.Errorf("failed to append vote event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit vote: %w", err)
	}
	return candidate, nil
}

func (r *voteEventRepository) Reset(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM vote_events`); err != nil {
		return fmt.Errorf("failed to clear vote events: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE candidates SET votes = 0`); err != nil {
		return fmt.Errorf("failed to zero tallies: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE voters SET has_voted = FALSE, vote_time = NULL`); err != nil {
		return fmt.Errorf("failed to reset voters: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}
	return nil
}

func (r *voteEventRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vote_events`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count vote events: %w", err)
	}
	return count, nil
}

func (r *voteEventRepository) Timeline(ctx context.Context, limit int) ([]domain.TimelineBucket, error) {
	query := `
		SELECT to_char(cast_at, 'YYYY-MM-DD') AS day, COUNT(*) AS votes
		FROM vote_events
		GROUP BY day
		ORDER BY day DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query timeline: %w", err)
	}
	defer rows.Close()

	var timeline []domain.TimelineBucket
	for rows.Next() {
		var b domain.TimelineBucket
		if err := rows.Scan(&b.Date, &b.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan timeline bucket: %w", err)
		}
		timeline = append(timeline, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating timeline: %w", err)
	}
	return timeline, nil
}

func (r *voteEventRepository) MostActiveHour(ctx context.Context) (string, bool, error) {
	query := `
		SELECT to_char(cast_at, 'HH24') AS hour, COUNT(*) AS votes
		FROM vote_events
		GROUP BY hour
		ORDER BY votes DESC, hour ASC
		LIMIT 1
	`
	var hour string
	var votes int64
	err := r.db.QueryRowContext(ctx, query).Scan(&hour, &votes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to query most active hour: %w", err)
	}
	return hour, true, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
