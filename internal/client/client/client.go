package client

import (
	"context"

	"github.com/dmitrijs2005/usermgmt/internal/client/models"
)

// Client is the Remote Directory Service contract.
type Client interface {
	List(ctx context.Context) ([]models.UserRecord, error)
	Create(ctx context.Context, p models.CreatePayload) error
	Update(ctx context.Context, id string, p models.UpdatePayload) error
	Delete(ctx context.Context, id string) error
}
