package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

type voterRepository struct {
	db *sql.DB
}

func NewVoterRepository(db *sql.DB) ports.VoterRepository {
	return &voterRepository{db: db}
}

func (r *voterRepository) GetByID(ctx context.Context, id string) (*domain.Voter, error) {
	query := `SELECT id, name, email, has_voted, vote_time FROM voters WHERE id = $1`
	voter := &domain.Voter{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&voter.ID, &voter.Name, &voter.Email, &voter.HasVoted, &voter.VoteTime,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get voter: %w", err)
	}
	return voter, nil
}

func (r *voterRepository) Register(ctx context.Context, voter *domain.Voter) error {
	query := `
		INSERT INTO voters (id, name, email, has_voted)
		VALUES ($1, $2, $3, FALSE)
		ON CONFLICT (id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, voter.ID, voter.Name, voter.Email); err != nil {
		return fmt.Errorf("failed to register voter: %w", err)
	}
	return nil
}

func (r *voterRepository) List(ctx context.Context) ([]domain.Voter, error) {
	query := `SELECT id, name, email, has_voted, vote_time FROM voters ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list voters: %w", err)
	}
	defer rows.Close()

	var voters []domain.Voter
	for rows.Next() {
		var v domain.Voter
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.HasVoted, &v.VoteTime); err != nil {
			return nil, fmt.Errorf("failed to scan voter: %w", err)
		}
		voters = append(voters, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating voters: %w", err)
	}
	return voters, nil
}

func (r *voterRepository) Counts(ctx context.Context) (int64, int64, error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE has_voted) FROM voters`
	var total, voted int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&total, &voted); err != nil {
		return 0, 0, fmt.Errorf("failed to count voters: %w", err)
	}
	return total, voted, nil
}
