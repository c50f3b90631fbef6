package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/ports"
)

// seedService loads a deterministic demo election: admin accounts, eight
// candidates, one hundred voters and sixty recorded votes. Votes go through
// the ledger so the cached tallies always match the event set.
type seedService struct {
	adminRepo     ports.AdminRepository
	candidateRepo ports.CandidateRepository
	voterRepo     ports.VoterRepository
	ledger        ports.VoteEventRepository
}

func NewSeedService(adminRepo ports.AdminRepository, candidateRepo ports.CandidateRepository, voterRepo ports.VoterRepository, ledger ports.VoteEventRepository) ports.SeedService {
	return &seedService{
		adminRepo:     adminRepo,
		candidateRepo: candidateRepo,
		voterRepo:     voterRepo,
		ledger:        ledger,
	}
}

var seedAdmins = []domain.AdminAccount{
	{Username: "admin", Password: "admin123", Email: "admin@voting.com"},
	{Username: "supervisor", Password: "super123", Email: "supervisor@voting.com"},
	{Username: "manager", Password: "manager123", Email: "manager@voting.com"},
}

var seedCandidates = []domain.Candidate{
	{Name: "John Smith", Party: "Democratic Party", Bio: "Former mayor with 10 years experience in public service. Focuses on education reform and healthcare.", Color: "#2196F3", Avatar: "👨‍💼", ImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face"},
	{Name: "Sarah Johnson", Party: "Republican Alliance", Bio: "Business leader and philanthropist. Advocates for economic growth and job creation.", Color: "#F44336", Avatar: "👩‍💼", ImageURL: "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=400&h=400&fit=crop&crop=face"},
	{Name: "Michael Chen", Party: "Progressive Movement", Bio: "Environmental scientist pushing for green energy and climate change policies.", Color: "#4CAF50", Avatar: "👨‍🔬", ImageURL: "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=400&h=400&fit=crop&crop=face"},
	{Name: "Emma Williams", Party: "Unity Coalition", Bio: "Human rights lawyer focused on social justice and equality for all citizens.", Color: "#FF9800", Avatar: "👩‍⚖️", ImageURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&h=400&fit=crop&crop=face"},
	{Name: "David Brown", Party: "Tech Future Party", Bio: "Tech entrepreneur advocating for digital transformation and innovation in government.", Color: "#9C27B0", Avatar: "👨‍💻", ImageURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&h=400&fit=crop&crop=face"},
	{Name: "Lisa Garcia", Party: "Green Party", Bio: "Environmental activist with plans for sustainable cities and conservation.", Color: "#00BCD4", Avatar: "👩‍🌾", ImageURL: "https://images.unsplash.com/photo-1488426862026-3ee34a7d66df?w=400&h=400&fit=crop&crop=face"},
	{Name: "Robert Wilson", Party: "Conservative Union", Bio: "Military veteran focused on national security and traditional values.", Color: "#795548", Avatar: "👨‍✈️", ImageURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400&h=400&fit=crop&crop=face"},
	{Name: "Maria Rodriguez", Party: "People's Choice", Bio: "Community organizer working on affordable housing and local businesses.", Color: "#FF5722", Avatar: "👩‍🏫", ImageURL: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=400&h=400&fit=crop&crop=face"},
}

var seedFirstNames = []string{
	"James", "Patricia", "Jennifer", "William", "Elizabeth", "David",
	"Barbara", "Richard", "Susan", "Joseph", "Margaret", "Charles",
	"Jessica", "Thomas", "Sarah", "Daniel", "Karen", "Matthew", "Nancy", "Anthony",
}
var seedLastNames = []string{
	"Miller", "Davis", "Wilson", "Taylor", "Moore", "Anderson",
	"Thomas", "Jackson", "White", "Harris",
}

const (
	seedVoterCount = 100
	seedVotedCount = 60
)

// seedBallot maps the n-th seeded voter (1-based) to a candidate index.
// The skew makes the demo leaderboard and percentages non-trivial.
func seedBallot(n int) int {
	switch {
	case n <= 15:
		return 0
	case n <= 30:
		return 1
	case n <= 40:
		return 2
	case n <= 47:
		return 3
	case n <= 53:
		return 4
	case n <= 58:
		return 5
	case n <= 59:
		return 6
	default:
		return 7
	}
}

func (s *seedService) Seed(ctx context.Context) error {
	for i := range seedAdmins {
		if err := s.adminRepo.Create(ctx, &seedAdmins[i]); err != nil {
			return fmt.Errorf("failed to seed admin %q: %w", seedAdmins[i].Username, err)
		}
	}

	candidates := make([]domain.Candidate, len(seedCandidates))
	copy(candidates, seedCandidates)
	for i := range candidates {
		if err := s.candidateRepo.Create(ctx, &candidates[i]); err != nil {
			return fmt.Errorf("failed to seed candidate %q: %w", candidates[i].Name, err)
		}
	}

	now := time.Now().UTC()
	for n := 1; n <= seedVoterCount; n++ {
		voter := &domain.Voter{
			ID:    fmt.Sprintf("VOTER%03d", n),
			Name:  fmt.Sprintf("%s %s", seedFirstNames[(n-1)%len(seedFirstNames)], seedLastNames[(n-1)%len(seedLastNames)]),
			Email: fmt.Sprintf("voter%d@email.com", n),
		}

		if n > seedVotedCount {
			if err := s.voterRepo.Register(ctx, voter); err != nil {
				return fmt.Errorf("failed to seed voter %q: %w", voter.ID, err)
			}
			continue
		}

		candidateID := candidates[seedBallot(n)].ID
		if _, err := s.ledger.Record(ctx, voter, candidateID, now); err != nil {
			return fmt.Errorf("failed to seed vote for %q: %w", voter.ID, err)
		}
	}

	return nil
}
