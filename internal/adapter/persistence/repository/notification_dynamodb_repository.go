package repository

import (
	"context"
	"sort"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNotificationsTableName = "notifications"
	notificationsCartIDIndex      = "cart_id-index"
)

type notificationItem struct {
	ID                string `dynamodbav:"id"`
	CartID            string `dynamodbav:"cart_id"`
	Channel           string `dynamodbav:"channel"`
	Recipient         string `dynamodbav:"recipient"`
	Message           string `dynamodbav:"message"`
	Status            string `dynamodbav:"status"`
	Error             string `dynamodbav:"error,omitempty"`
	ProviderMessageID string `dynamodbav:"provider_message_id,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists Notification entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: cart_id-index (PK: cart_id)

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) ListByCartID(ctx context.Context, cartID string) ([]entities.Notification, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsCartIDIndex),
		KeyConditionExpression: aws.String("cart_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: cartID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Notification, 0, len(out.Items))
	for _, raw := range out.Items {
		var it notificationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromNotificationItem(it))
	}

	// Newest first; the admin screen shows history top-down.
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:                n.ID,
		CartID:            n.CartID,
		Channel:           n.Channel,
		Recipient:         n.Recipient,
		Message:           n.Message,
		Status:            string(n.Status),
		Error:             n.Error,
		ProviderMessageID: n.ProviderMessageID,
		CreatedAt:         n.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Notification{
		ID:                it.ID,
		CartID:            it.CartID,
		Channel:           it.Channel,
		Recipient:         it.Recipient,
		Message:           it.Message,
		Status:            entities.NotificationStatus(it.Status),
		Error:             it.Error,
		ProviderMessageID: it.ProviderMessageID,
		CreatedAt:         createdAt,
	}
}
