package useritems

import (
	"context"

	"grail-tracker/feature/progress"
)

// UserRemote is a progress.Remote bound to one user that writes straight to the database.
type UserRemote struct {
	service *Service
	userID  string
}

var _ progress.Remote = (*UserRemote)(nil)

// NewUserRemote binds the service to userID.
func NewUserRemote(service *Service, userID string) *UserRemote {
	return &UserRemote{service: service, userID: userID}
}

func (r *UserRemote) ListItems(ctx context.Context) ([]progress.RemoteItem, error) {
	rows, err := r.service.List(ctx, r.userID)
	if err != nil {
		return nil, err
	}
	out := make([]progress.RemoteItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Remote())
	}
	return out, nil
}

func (r *UserRemote) SetFound(ctx context.Context, itemKey string, found bool) error {
	_, err := r.service.Set(ctx, r.userID, itemKey, found)
	return err
}

func (r *UserRemote) SetBulk(ctx context.Context, items []progress.BulkItem) error {
	_, err := r.service.SetBulk(ctx, r.userID, items)
	return err
}

func (r *UserRemote) Clear(ctx context.Context) error {
	_, err := r.service.Clear(ctx, r.userID)
	return err
}
