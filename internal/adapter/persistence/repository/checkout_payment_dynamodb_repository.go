package repository

import (
	"context"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsOrderIDIndex     = "order_id-index"
)

type checkoutPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	OrderID            string                 `dynamodbav:"order_id"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// CheckoutPaymentDynamoRepository persists CheckoutPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)

type CheckoutPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICheckoutPaymentRepository = (*CheckoutPaymentDynamoRepository)(nil)

func NewCheckoutPaymentDynamoRepository(ddb *dynamodb.Client) *CheckoutPaymentDynamoRepository {
	return &CheckoutPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *CheckoutPaymentDynamoRepository) Create(ctx context.Context, p entities.CheckoutPayment) (entities.CheckoutPayment, error) {
	av, err := attributevalue.MarshalMap(toCheckoutPaymentItem(p))
	if err != nil {
		return entities.CheckoutPayment{}, err
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
		return entities.CheckoutPayment{}, err
	}
	return p, nil
}

func (r *CheckoutPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.CheckoutPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CheckoutPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.CheckoutPayment{}, nil
	}

	var it checkoutPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CheckoutPayment{}, err
	}
	return fromCheckoutPaymentItem(it), nil
}

func (r *CheckoutPaymentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.CheckoutPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.CheckoutPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it checkoutPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCheckoutPaymentItem(it))
	}
	return items, nil
}

func toCheckoutPaymentItem(p entities.CheckoutPayment) checkoutPaymentItem {
	return checkoutPaymentItem{
		ID:                 p.ID,
		OrderID:            p.OrderID,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromCheckoutPaymentItem(it checkoutPaymentItem) entities.CheckoutPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.CheckoutPayment{
		ID:                 it.ID,
		OrderID:            it.OrderID,
		Date:               dt,
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
