package ports

import (
	"context"

	"github.com/architeacher/device-registry/internal/domain/model"
)

// UserStore is the external user-preference store.
type UserStore interface {
	// FetchUserByID retrieves a user with its permission flags and device
	// allow-list.
	FetchUserByID(ctx context.Context, id string) (*model.User, error)
}
