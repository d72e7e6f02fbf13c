package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAbandonedCartsTableName = "abandoned_carts"
	abandonedCartsPhoneIndex       = "phone-index"
)

type abandonedCartLineItem struct {
	ProductID   string `dynamodbav:"product_id"`
	ProductName string `dynamodbav:"product_name"`
	Price       string `dynamodbav:"price"`
	Quantity    int    `dynamodbav:"quantity"`
}

type abandonedCartItem struct {
	ID           string                  `dynamodbav:"id"`
	CustomerName string                  `dynamodbav:"customer_name,omitempty"`
	Phone        string                  `dynamodbav:"phone,omitempty"`
	Email        string                  `dynamodbav:"email,omitempty"`
	Items        []abandonedCartLineItem `dynamodbav:"items,omitempty"`
	Total        string                  `dynamodbav:"total"`
	Status       string                  `dynamodbav:"status"`
	CreatedAt    string                  `dynamodbav:"created_at"`
	UpdatedAt    string                  `dynamodbav:"updated_at"`
}

// AbandonedCartDynamoRepository persists AbandonedCart entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: phone-index (PK: phone)
//
// The phone index carries the one-live-cart-per-phone upsert the storefront
// relies on while a visitor shops.

type AbandonedCartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAbandonedCartRepository = (*AbandonedCartDynamoRepository)(nil)

func NewAbandonedCartDynamoRepository(ddb *dynamodb.Client) *AbandonedCartDynamoRepository {
	return &AbandonedCartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ABANDONED_CARTS_TABLE", defaultAbandonedCartsTableName),
	}
}

func (r *AbandonedCartDynamoRepository) GetByID(ctx context.Context, id string) (entities.AbandonedCart, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AbandonedCart{}, err
	}
	if len(out.Item) == 0 {
		return entities.AbandonedCart{}, nil
	}

	var it abandonedCartItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AbandonedCart{}, err
	}
	return fromAbandonedCartItem(it), nil
}

func (r *AbandonedCartDynamoRepository) GetByPhone(ctx context.Context, phone string) (entities.AbandonedCart, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(abandonedCartsPhoneIndex),
		KeyConditionExpression: aws.String("phone = :phone"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":phone": &types.AttributeValueMemberS{Value: phone},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.AbandonedCart{}, err
	}
	if len(out.Items) == 0 {
		return entities.AbandonedCart{}, nil
	}

	var it abandonedCartItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.AbandonedCart{}, err
	}
	return fromAbandonedCartItem(it), nil
}

func (r *AbandonedCartDynamoRepository) ListAll(ctx context.Context) ([]entities.AbandonedCart, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	carts := make([]entities.AbandonedCart, 0, len(raw))
	for _, item := range raw {
		var it abandonedCartItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		carts = append(carts, fromAbandonedCartItem(it))
	}
	return carts, nil
}

// UpsertByPhone replaces the live cart for the phone, keeping the original id
// and creation time when one already exists.
func (r *AbandonedCartDynamoRepository) UpsertByPhone(ctx context.Context, cart entities.AbandonedCart) (entities.AbandonedCart, error) {
	existing, err := r.GetByPhone(ctx, cart.Phone)
	if err != nil {
		return entities.AbandonedCart{}, err
	}
	if existing.ID != "" {
		cart.ID = existing.ID
		cart.CreatedAt = existing.CreatedAt
	}

	av, err := attributevalue.MarshalMap(toAbandonedCartItem(cart))
	if err != nil {
		return entities.AbandonedCart{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.AbandonedCart{}, err
	}
	return cart, nil
}

func (r *AbandonedCartDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.AbandonedCartStatus) (entities.AbandonedCart, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.AbandonedCart{}, nil
		}
		return entities.AbandonedCart{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.AbandonedCart{}, nil
	}

	var it abandonedCartItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.AbandonedCart{}, err
	}
	return fromAbandonedCartItem(it), nil
}

func toAbandonedCartItem(c entities.AbandonedCart) abandonedCartItem {
	items := make([]abandonedCartLineItem, 0, len(c.Items))
	for _, li := range c.Items {
		items = append(items, abandonedCartLineItem{
			ProductID:   li.ProductID,
			ProductName: li.ProductName,
			Price:       floatToString(li.Price),
			Quantity:    li.Quantity,
		})
	}
	return abandonedCartItem{
		ID:           c.ID,
		CustomerName: c.CustomerName,
		Phone:        c.Phone,
		Email:        c.Email,
		Items:        items,
		Total:        floatToString(c.Total),
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAbandonedCartItem(it abandonedCartItem) entities.AbandonedCart {
	items := make([]entities.AbandonedCartItem, 0, len(it.Items))
	for _, li := range it.Items {
		price, _ := strconv.ParseFloat(li.Price, 64)
		items = append(items, entities.AbandonedCartItem{
			ProductID:   li.ProductID,
			ProductName: li.ProductName,
			Price:       price,
			Quantity:    li.Quantity,
		})
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	total, _ := strconv.ParseFloat(it.Total, 64)
	return entities.AbandonedCart{
		ID:           it.ID,
		CustomerName: it.CustomerName,
		Phone:        it.Phone,
		Email:        it.Email,
		Items:        items,
		Total:        total,
		Status:       entities.AbandonedCartStatus(it.Status),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
