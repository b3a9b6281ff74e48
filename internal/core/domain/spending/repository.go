package spending

import (
	c "billmind/internal/core/domain/common"
	"billmind/internal/core/domain/user"
	"context"
	"time"
)

type CreateInput struct {
	UserID   user.ID
	Amount   float64
	Category string
	Date     time.Time
}

type ReadOptions struct {
	UserIDEquals c.Optional[user.ID]
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Transaction, error)
	Read(ctx context.Context, options ReadOptions) ([]Transaction, error)
}
