// internal/service/portfolio_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"goldvault/internal/domain"
	"goldvault/internal/repository"
	"goldvault/internal/util"
)

// PortfolioService defines the interface for portfolio valuation.
type PortfolioService interface {
	// GetPortfolio returns the user's portfolio with a freshly computed
	// current value, creating a zeroed portfolio if none exists.
	GetPortfolio(ctx context.Context, userID string) (*domain.Portfolio, error)
}

// portfolioService implements the PortfolioService interface.
type portfolioService struct {
	q          repository.DBExecutor
	portfolios repository.PortfolioRepository
	prices     PriceService
	now        func() time.Time
}

// NewPortfolioService creates a new instance of PortfolioService.
func NewPortfolioService(
	q repository.DBExecutor,
	portfolios repository.PortfolioRepository,
	prices PriceService,
) PortfolioService {
	return &portfolioService{
		q:          q,
		portfolios: portfolios,
		prices:     prices,
		now:        time.Now,
	}
}

func (s *portfolioService) GetPortfolio(ctx context.Context, userID string) (*domain.Portfolio, error) {
	portfolio, err := s.portfolios.GetPortfolioByUserID(ctx, s.q, userID)
	if errors.Is(err, util.ErrNotFound) {
		portfolio = domain.NewPortfolio(userID)
		if err := s.portfolios.CreatePortfolio(ctx, s.q, portfolio); err != nil {
			return nil, fmt.Errorf("get portfolio: failed to create portfolio: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("get portfolio: %w", err)
	}

	// CurrentPrice is fail-soft; without a usable snapshot the stored value
	// is retained unchanged.
	price := s.prices.CurrentPrice(ctx)
	if price == nil {
		return portfolio, nil
	}

	now := s.now().UTC()
	value := portfolio.GoldHoldings.Mul(price.Price24K).Round(2)
	if err := s.portfolios.SetCurrentValue(ctx, s.q, userID, value, now); err != nil {
		return nil, fmt.Errorf("get portfolio: failed to persist current value: %w", err)
	}

	portfolio.CurrentValue = value
	portfolio.UpdatedAt = now
	return portfolio, nil
}
