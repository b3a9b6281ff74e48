package spending

import (
	"context"

	e "billmind/internal/core/domain/errors"
	"billmind/internal/core/domain/spending"
	"billmind/internal/core/domain/user"

	"github.com/jackc/pgx/v4"
)

// DBTX is satisfied by both pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type PgxTransactionRepository struct {
	db DBTX
}

func NewPgxTransactionRepository(db DBTX) *PgxTransactionRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxTransactionRepository{db: db}
}

const createTransactionQuery = `
INSERT INTO spending_transaction (user_id, amount, category, date)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, amount, category, date`

func (r *PgxTransactionRepository) Create(
	ctx context.Context,
	input spending.CreateInput,
) (txn spending.Transaction, err error) {
	row := r.db.QueryRow(
		ctx,
		createTransactionQuery,
		string(input.UserID),
		input.Amount,
		input.Category,
		input.Date,
	)
	return scanTransaction(row)
}

const readTransactionsQuery = `
SELECT id, user_id, amount, category, date
FROM spending_transaction
WHERE ($1 OR user_id = $2)
ORDER BY id ASC`

func (r *PgxTransactionRepository) Read(
	ctx context.Context,
	options spending.ReadOptions,
) (transactions []spending.Transaction, err error) {
	rows, err := r.db.Query(
		ctx,
		readTransactionsQuery,
		!options.UserIDEquals.IsPresent,
		string(options.UserIDEquals.Value),
	)
	if err != nil {
		return transactions, err
	}
	defer rows.Close()

	transactions = make([]spending.Transaction, 0)
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return transactions, err
		}
		transactions = append(transactions, txn)
	}
	return transactions, rows.Err()
}

func scanTransaction(row pgx.Row) (txn spending.Transaction, err error) {
	var (
		id     int64
		userID string
	)
	err = row.Scan(&id, &userID, &txn.Amount, &txn.Category, &txn.Date)
	if err != nil {
		return txn, err
	}
	txn.ID = spending.TransactionID(id)
	txn.UserID = user.ID(userID)
	return txn, nil
}
