package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/fleshka4/v4-swap-quoter/internal/config"
	"github.com/fleshka4/v4-swap-quoter/internal/infra/uniswapv4"
	"github.com/fleshka4/v4-swap-quoter/internal/service/dto"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock

// Service represents interface for business logic.
type Service interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (*dto.Quote, error)
}

// QuoterService represents struct for business logic.
type QuoterService struct {
	uniswapClient uniswapv4.Client
	cfg           config.Config
	logger        *zap.Logger
}

// NewQuoterService creates QuoterService. cfg must already be validated.
func NewQuoterService(cli uniswapv4.Client, cfg config.Config, logger *zap.Logger) *QuoterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoterService{
		uniswapClient: cli,
		cfg:           cfg,
		logger:        logger,
	}
}
