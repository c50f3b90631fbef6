package services

import (
	"context"
	"time"

	"github.com/ballotbox/api/internal/core/domain"
)

type fakeCandidateRepo struct {
	createFn  func(ctx context.Context, c *domain.Candidate) error
	getByIDFn func(ctx context.Context, id int64) (*domain.Candidate, error)
	listFn    func(ctx context.Context) ([]domain.Candidate, error)
	countFn   func(ctx context.Context) (int64, error)
}

func (f *fakeCandidateRepo) Create(ctx context.Context, c *domain.Candidate) error {
	return f.createFn(ctx, c)
}

func (f *fakeCandidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeCandidateRepo) List(ctx context.Context) ([]domain.Candidate, error) {
	return f.listFn(ctx)
}

func (f *fakeCandidateRepo) Count(ctx context.Context) (int64, error) {
	return f.countFn(ctx)
}

type fakeVoterRepo struct {
	getByIDFn  func(ctx context.Context, id string) (*domain.Voter, error)
	registerFn func(ctx context.Context, v *domain.Voter) error
	listFn     func(ctx context.Context) ([]domain.Voter, error)
	countsFn   func(ctx context.Context) (int64, int64, error)
}

func (f *fakeVoterRepo) GetByID(ctx context.Context, id string) (*domain.Voter, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeVoterRepo) Register(ctx context.Context, v *domain.Voter) error {
	return f.registerFn(ctx, v)
}

func (f *fakeVoterRepo) List(ctx context.Context) ([]domain.Voter, error) {
	return f.listFn(ctx)
}

func (f *fakeVoterRepo) Counts(ctx context.Context) (int64, int64, error) {
	return f.countsFn(ctx)
}

type fakeLedger struct {
	recordFn         func(ctx context.Context, voter *domain.Voter, candidateID int64, castAt time.Time) (*domain.Candidate, error)
	resetFn          func(ctx context.Context) error
	countFn          func(ctx context.Context) (int64, error)
	timelineFn       func(ctx context.Context, limit int) ([]domain.TimelineBucket, error)
	mostActiveHourFn func(ctx context.Context) (string, bool, error)
}

func (f *fakeLedger) Record(ctx context.Context, voter *domain.Voter, candidateID int64, castAt time.Time) (*domain.Candidate, error) {
	return f.recordFn(ctx, voter, candidateID, castAt)
}

func (f *fakeLedger) Reset(ctx context.Context) error {
	return f.resetFn(ctx)
}

func (f *fakeLedger) Count(ctx context.Context) (int64, error) {
	return f.countFn(ctx)
}

func (f *fakeLedger) Timeline(ctx context.Context, limit int) ([]domain.TimelineBucket, error) {
	return f.timelineFn(ctx, limit)
}

func (f *fakeLedger) MostActiveHour(ctx context.Context) (string, bool, error) {
	return f.mostActiveHourFn(ctx)
}

type fakeAdminRepo struct {
	getByUsernameFn func(ctx context.Context, username string) (*domain.AdminAccount, error)
	createFn        func(ctx context.Context, a *domain.AdminAccount) error
}

func (f *fakeAdminRepo) GetByUsername(ctx context.Context, username string) (*domain.AdminAccount, error) {
	return f.getByUsernameFn(ctx, username)
}

func (f *fakeAdminRepo) Create(ctx context.Context, a *domain.AdminAccount) error {
	return f.createFn(ctx, a)
}

type fakeVerifier struct {
	verifyFn func(ctx context.Context, username, password string) (bool, error)
}

func (f *fakeVerifier) Verify(ctx context.Context, username, password string) (bool, error) {
	return f.verifyFn(ctx, username, password)
}
