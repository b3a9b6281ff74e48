package createtransaction

import (
	e "billmind/internal/core/domain/errors"
	"billmind/internal/core/domain/logging"
	"billmind/internal/core/domain/spending"
	"billmind/internal/core/domain/user"
	"billmind/internal/core/services"
	"context"
	"time"
)

type Input struct {
	UserID   user.ID
	Amount   float64
	Category string
	Date     time.Time
}

type Result struct {
	Transaction spending.Transaction
}

type service struct {
	log          logging.Logger
	transactions spending.Repository
}

func New(
	log logging.Logger,
	transactions spending.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if transactions == nil {
		panic(e.NewNilArgumentError("transactions"))
	}
	return &service{log: log, transactions: transactions}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	createdTransaction, err := s.transactions.Create(ctx, spending.CreateInput{
		UserID:   input.UserID,
		Amount:   input.Amount,
		Category: input.Category,
		Date:     input.Date,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"Transaction has been recorded.",
		logging.Entry("transactionID", createdTransaction.ID),
		logging.Entry("userID", createdTransaction.UserID),
	)
	result.Transaction = createdTransaction
	return result, nil
}
