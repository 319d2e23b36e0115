package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nileport/trading_erp/internal/apperrors"
	"github.com/nileport/trading_erp/internal/core/domain"
	portsrepo "github.com/nileport/trading_erp/internal/core/ports/repositories"
	portssvc "github.com/nileport/trading_erp/internal/core/ports/services"
	"github.com/nileport/trading_erp/internal/dto"
	"github.com/nileport/trading_erp/internal/middleware"
	"github.com/shopspring/decimal"
)

type treasuryService struct {
	treasuryRepo portsrepo.TreasuryRepositoryFacade
}

// NewTreasuryService creates a new treasury service backed by the given repository.
func NewTreasuryService(treasuryRepo portsrepo.TreasuryRepositoryFacade) portssvc.TreasurySvcFacade {
	return &treasuryService{treasuryRepo: treasuryRepo}
}

func (s *treasuryService) CreateTreasury(ctx context.Context, req dto.CreateTreasuryRequest, userID string) (*domain.Treasury, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	treasury := domain.Treasury{
		TreasuryID: uuid.NewString(),
		Name:       req.Name,
		Balance:    decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.treasuryRepo.SaveTreasury(ctx, treasury); err != nil {
		logger.Error("Failed to save treasury in repository", slog.String("error", err.Error()), slog.String("treasury_id", treasury.TreasuryID))
		return nil, err
	}

	logger.Info("Treasury created successfully", slog.String("treasury_id", treasury.TreasuryID))
	return &treasury, nil
}

func (s *treasuryService) GetTreasuryByID(ctx context.Context, treasuryID string) (*domain.Treasury, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	treasury, err := s.treasuryRepo.FindTreasuryByID(ctx, treasuryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find treasury by ID in repository", slog.String("error", err.Error()), slog.String("treasury_id", treasuryID))
		}
		return nil, err
	}
	return treasury, nil
}

func (s *treasuryService) ListTreasuries(ctx context.Context) ([]domain.Treasury, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	treasuries, err := s.treasuryRepo.ListTreasuries(ctx)
	if err != nil {
		logger.Error("Failed to list treasuries from repository", slog.String("error", err.Error()))
		return nil, err
	}
	if treasuries == nil {
		return []domain.Treasury{}, nil
	}
	return treasuries, nil
}

func (s *treasuryService) UpdateTreasury(ctx context.Context, treasuryID string, req dto.UpdateTreasuryRequest, userID string) (*domain.Treasury, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	treasury, err := s.treasuryRepo.FindTreasuryByID(ctx, treasuryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		treasury.Name = *req.Name
	}
	treasury.LastUpdatedAt = time.Now()
	treasury.LastUpdatedBy = userID

	if err := s.treasuryRepo.UpdateTreasury(ctx, *treasury); err != nil {
		logger.Error("Failed to update treasury in repository", slog.String("error", err.Error()), slog.String("treasury_id", treasuryID))
		return nil, err
	}

	logger.Info("Treasury updated successfully", slog.String("treasury_id", treasuryID))
	return treasury, nil
}

func (s *treasuryService) DeleteTreasury(ctx context.Context, treasuryID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.treasuryRepo.DeleteTreasury(ctx, treasuryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to delete treasury in repository", slog.String("error", err.Error()), slog.String("treasury_id", treasuryID))
		}
		return err
	}

	logger.Info("Treasury deleted successfully", slog.String("treasury_id", treasuryID))
	return nil
}
