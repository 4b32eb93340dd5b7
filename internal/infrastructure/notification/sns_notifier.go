package notification

import (
	"context"
	"encoding/json"

	"nagrik_seva/internal/infrastructure/database"
	"nagrik_seva/internal/usecase/interfaces"
	"nagrik_seva/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSNotifier publishes user notifications to an SNS topic. A downstream
// consumer resolves device tokens and handles delivery retries; publishing
// is the engine's whole responsibility.
type SNSNotifier struct {
	client   *sns.Client
	topicARN string
}

var _ interfaces.INotifier = (*SNSNotifier)(nil)

type notificationMessage struct {
	UserID string `json:"user_id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

func NewSNSNotifier(ctx context.Context, topicARN string) (*SNSNotifier, error) {
	cfg, err := database.NewDynamoDBConfigFromEnv(ctx)
	if err != nil {
		return nil, err
	}
	return &SNSNotifier{client: sns.NewFromConfig(cfg), topicARN: topicARN}, nil
}

func (n *SNSNotifier) Notify(ctx context.Context, userID, title, body string) error {
	msg, err := json.Marshal(notificationMessage{UserID: userID, Title: title, Body: body})
	if err != nil {
		return err
	}

	_, err = n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Message:  aws.String(string(msg)),
	})
	if err != nil {
		logger.L().Errorw("notification publish failed", "user_id", userID, "err", err)
		return err
	}
	return nil
}

// NopNotifier drops every notification. Used when no topic is configured.
type NopNotifier struct{}

var _ interfaces.INotifier = NopNotifier{}

func (NopNotifier) Notify(ctx context.Context, userID, title, body string) error {
	logger.L().Debugw("notification dropped, no topic configured", "user_id", userID, "title", title)
	return nil
}
