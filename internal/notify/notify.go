package notify

import (
	"context"
	"log/slog"

	"devpulse/internal/lib"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Notifier sends push messages to single device tokens through Firebase
// Cloud Messaging. It is initialized once at startup, there is no package
// level state.
type Notifier struct {
	client *messaging.Client
	log    *slog.Logger
}

func New(ctx context.Context, credentialsPath string, log *slog.Logger) (*Notifier, error) {
	const op = "notify.New"

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, lib.Err(op, err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &Notifier{
		client: client,
		log:    log,
	}, nil
}

// SendPush delivers one message to one device token and returns the provider
// message id. No batching, no retries.
func (n *Notifier) SendPush(ctx context.Context, token, title, body string, data map[string]string) (string, error) {
	const op = "notify.SendPush"

	msg := &messaging.Message{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Token: token,
		Data:  data,
	}

	id, err := n.client.Send(ctx, msg)
	if err != nil {
		return "", lib.Err(op, err)
	}

	n.log.Debug("push notification sent", slog.String("message_id", id))
	return id, nil
}
