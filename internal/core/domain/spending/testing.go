package spending

import (
	"context"
	"sync"
)

type TestTransactionRepository struct {
	CreateError  error
	ReadError    error
	Transactions []Transaction
	ReadWith     []ReadOptions
	nextID       TransactionID
	lock         sync.Mutex
}

func NewTestTransactionRepository() *TestTransactionRepository {
	return &TestTransactionRepository{}
}

func (r *TestTransactionRepository) Create(ctx context.Context, input CreateInput) (txn Transaction, err error) {
	if r.CreateError != nil {
		return txn, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.nextID++
	txn = Transaction{
		ID:       r.nextID,
		UserID:   input.UserID,
		Amount:   input.Amount,
		Category: input.Category,
		Date:     input.Date,
	}
	r.Transactions = append(r.Transactions, txn)
	return txn, nil
}

func (r *TestTransactionRepository) Read(ctx context.Context, options ReadOptions) ([]Transaction, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadWith = append(r.ReadWith, options)

	transactions := make([]Transaction, 0, len(r.Transactions))
	for _, txn := range r.Transactions {
		if options.UserIDEquals.IsPresent && txn.UserID != options.UserIDEquals.Value {
			continue
		}
		transactions = append(transactions, txn)
	}
	return transactions, nil
}
