package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

type candidateRepository struct {
	db *sql.DB
}

func NewCandidateRepository(db *sql.DB) ports.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		INSERT INTO candidates (name, party, bio, color, avatar, image_url, votes)
		VALUES ($1, $2, $3, $4, $5, $6, 0)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		candidate.Name, candidate.Party, candidate.Bio,
		candidate.Color, candidate.Avatar, candidate.ImageURL,
	).Scan(&candidate.ID)
	if err != nil {
		return fmt.Errorf("failed to insert candidate: %w", err)
	}
	return nil
}

func (r *candidateRepository) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := `
		SELECT id, name, party, bio, color, avatar, image_url, votes
		FROM candidates
		WHERE id = $1
	`
	candidate := &domain.Candidate{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&candidate.ID, &candidate.Name, &candidate.Party, &candidate.Bio,
		&candidate.Color, &candidate.Avatar, &candidate.ImageURL, &candidate.Votes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return candidate, nil
}

func (r *candidateRepository) List(ctx context.Context) ([]domain.Candidate, error) {
	query := `
		SELECT id, name, party, bio, color, avatar, image_url, votes
		FROM candidates
		ORDER BY votes DESC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Party, &c.Bio, &c.Color, &c.Avatar, &c.ImageURL, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating candidates: %w", err)
	}
	return candidates, nil
}

func (r *candidateRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}
	return count, nil
}
