package repository

import (
	"context"

	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/model"
)

// AccountRepository describes persistence operations for customer accounts.
type AccountRepository interface {
	// Create inserts the account and returns its generated identifier.
	// A duplicate email fails with ErrEmailTaken and writes nothing.
	Create(ctx context.Context, account *model.Account) (int64, error)
	GetByEmail(ctx context.Context, email string) (*model.Account, error)
	GetByID(ctx context.Context, id int64) (*model.Account, error)
	// Update overwrites the stored profile wholesale.
	Update(ctx context.Context, account *model.Account) error
	// DeleteAll wipes the local account store.
	DeleteAll(ctx context.Context) error
}
