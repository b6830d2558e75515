package resources

import (
	"context"
	"net/http"

	"github.com/carebridge/navigator-console/internal/gateway"
	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// NotificationResource implements the notifications resource service
type NotificationResource struct {
	client *gateway.Client
	logger *logger.Logger
}

// NewNotificationResource creates a new notifications resource service
func NewNotificationResource(client *gateway.Client, log *logger.Logger) *NotificationResource {
	return &NotificationResource{
		client: client,
		logger: log,
	}
}

// List retrieves the current user's notifications, unread first
func (r *NotificationResource) List(ctx context.Context) ([]types.Notification, error) {
	resp, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodGet,
		Path:   "/notifications",
	})
	if err != nil {
		return nil, err
	}

	result, err := decodeList[types.Notification](resp.Body)
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}

// MarkRead marks one notification as read
func (r *NotificationResource) MarkRead(ctx context.Context, id string) error {
	_, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodPatch,
		Path:   "/notifications/" + id + "/read",
	})
	return err
}

// MarkAllRead marks every notification as read in one bulk call
func (r *NotificationResource) MarkAllRead(ctx context.Context) error {
	_, err := r.client.Do(ctx, &gateway.Request{
		Method: http.MethodPatch,
		Path:   "/notifications/mark-all-read",
	})
	return err
}
