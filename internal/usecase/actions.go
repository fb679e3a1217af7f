package usecase

import (
	"context"

	"MarketLens/internal/domain/models"
	domservice "MarketLens/internal/domain/service"
	"MarketLens/internal/service/session"
)

// ActionsUseCase covers the identity-bearing write and query operations that
// pass straight through to upstream: paper trades and assistant queries.
// Failures propagate; nothing here degrades to synthetic data.
type ActionsUseCase struct {
	portfolio domservice.PortfolioSource
	chat      domservice.ChatSource
}

func NewActionsUseCase(portfolio domservice.PortfolioSource, chat domservice.ChatSource) *ActionsUseCase {
	return &ActionsUseCase{portfolio: portfolio, chat: chat}
}

func (uc *ActionsUseCase) SubmitTransaction(ctx context.Context, sess *session.Session, req models.TransactionRequest) (models.TransactionResult, error) {
	return uc.portfolio.SubmitTransaction(ctx, sess, req)
}

func (uc *ActionsUseCase) ChatQuery(ctx context.Context, sess *session.Session, message string) (models.ChatReply, error) {
	return uc.chat.Query(ctx, sess, message)
}
