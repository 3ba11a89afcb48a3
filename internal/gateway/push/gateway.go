package push

import (
	"context"
	"errors"
	"fmt"

	"delivery/internal/repository"
	"delivery/pkg/logger"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Gateway sends FCM push notifications. Delivery is at-most-once best effort:
// a party without a stored device token is a warning, not an error, and FCM
// failures surface to the caller only for logging.
type Gateway struct {
	client messenger
	tokens TokenSource
	log    gatewayLogger
}

func New(client messenger, tokens TokenSource, log gatewayLogger) *Gateway {
	return &Gateway{
		client: client,
		tokens: tokens,
		log:    log.With(),
	}
}

// NewMessagingClient builds the FCM client from the Firebase Admin SDK. With
// an empty credentialsFile the SDK falls back to application-default
// credentials (GOOGLE_APPLICATION_CREDENTIALS).
func NewMessagingClient(ctx context.Context, projectID, credentialsFile string) (*messaging.Client, error) {
	opts := []option.ClientOption{}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase messaging client: %w", err)
	}
	return client, nil
}

func (g *Gateway) SendPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	deviceToken, err := g.tokens.DeviceToken(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceTokenNotFound) {
			g.log.Warn("no device token stored, push skipped",
				logger.NewField("user", userID),
			)
			PushSkippedTotal.Inc()
			return nil
		}
		PushFailedTotal.WithLabelValues("token_lookup").Inc()
		return fmt.Errorf("resolve device token for %s: %w", userID, err)
	}

	msg := &messaging.Message{
		Token: deviceToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := g.client.Send(ctx, msg); err != nil {
		PushFailedTotal.WithLabelValues("fcm_send").Inc()
		return fmt.Errorf("send push to %s: %w", userID, err)
	}

	PushSentTotal.Inc()
	return nil
}
