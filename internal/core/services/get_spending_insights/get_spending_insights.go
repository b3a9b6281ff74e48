package getspendinginsights

import (
	c "billmind/internal/core/domain/common"
	e "billmind/internal/core/domain/errors"
	"billmind/internal/core/domain/logging"
	"billmind/internal/core/domain/spending"
	"billmind/internal/core/domain/user"
	"billmind/internal/core/services"
	"context"
	"time"
)

type Input struct {
	UserID user.ID
}

type Result struct {
	Insights spending.Insights
}

type service struct {
	log          logging.Logger
	transactions spending.Repository
	now          func() time.Time
}

func New(
	log logging.Logger,
	transactions spending.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if transactions == nil {
		panic(e.NewNilArgumentError("transactions"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, transactions: transactions, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	transactions, err := s.transactions.Read(ctx, spending.ReadOptions{
		UserIDEquals: c.NewOptional(input.UserID, true),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	result.Insights = spending.ComputeInsights(transactions, s.now())
	return result, nil
}
