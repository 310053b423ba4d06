package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/joaovmb/team-manager/models"
	"github.com/joaovmb/team-manager/reports"
	"github.com/joaovmb/team-manager/repositories"
	"golang.org/x/sync/errgroup"
)

const recentActivitySize = 5

type DashboardService interface {
	Overview(ctx context.Context, userID uuid.UUID) (*DashboardOverview, error)
}

type DashboardOverview struct {
	Stats          reports.Stats        `json:"stats"`
	RecentActivity []reports.Activity   `json:"recent_activity"`
	Month          reports.MonthSummary `json:"month"`
}

type dashboardService struct {
	playerRepo      repositories.PlayerRepository
	transactionRepo repositories.TransactionRepository
	now             func() time.Time
}

func NewDashboardService(playerRepo repositories.PlayerRepository, transactionRepo repositories.TransactionRepository) DashboardService {
	return &dashboardService{
		playerRepo:      playerRepo,
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// Overview loads both lists concurrently and derives all dashboard numbers
// in one pass. Nothing is cached between calls.
func (s *dashboardService) Overview(ctx context.Context, userID uuid.UUID) (*DashboardOverview, error) {
	var (
		players      []models.Player
		transactions []models.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		players, err = s.playerRepo.ListByUserID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = s.transactionRepo.ListByUserID(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.now()
	return &DashboardOverview{
		Stats:          reports.Summarize(players, transactions, now),
		RecentActivity: reports.RecentActivity(players, transactions, recentActivitySize),
		Month:          reports.SummarizeMonth(transactions, now),
	}, nil
}
