package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"asphaltworks/internal/domain/entities"
	"asphaltworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersStatusIndex      = "status-index"
)

type loadItem struct {
	ID               string  `dynamodbav:"id"`
	LoadNumber       int     `dynamodbav:"load_number"`
	TonnageDelivered float64 `dynamodbav:"tonnage_delivered"`
	DeliveryTime     string  `dynamodbav:"delivery_time"`
	TruckID          string  `dynamodbav:"truck_id,omitempty"`
	DriverName       string  `dynamodbav:"driver_name,omitempty"`
	TicketNumber     string  `dynamodbav:"ticket_number,omitempty"`
	Notes            string  `dynamodbav:"notes,omitempty"`
	Status           string  `dynamodbav:"status"`
	CreatedAt        string  `dynamodbav:"created_at"`
	CreatedBy        string  `dynamodbav:"created_by"`
}

type orderItem struct {
	ID                  string     `dynamodbav:"id"`
	CustomerID          string     `dynamodbav:"customer_id,omitempty"`
	CustomerEmail       string     `dynamodbav:"customer_email"`
	MixID               string     `dynamodbav:"mix_id"`
	Destination         string     `dynamodbav:"destination,omitempty"`
	SpecialInstructions string     `dynamodbav:"special_instructions,omitempty"`
	Status              string     `dynamodbav:"status"`
	PaymentIntentID     string     `dynamodbav:"payment_intent_id"`
	AuthorizedAmount    float64    `dynamodbav:"authorized_amount"`
	FinalAmount         float64    `dynamodbav:"final_amount,omitempty"`
	OriginalTonnage     float64    `dynamodbav:"original_tonnage"`
	TotalDelivered      float64    `dynamodbav:"total_delivered"`
	MaxAllowedTonnage   float64    `dynamodbav:"max_allowed_tonnage"`
	Loads               []loadItem `dynamodbav:"loads"`
	IsMultiLoad         bool       `dynamodbav:"is_multi_load"`
	Version             int64      `dynamodbav:"version"`
	CreatedAt           string     `dynamodbav:"created_at"`
	UpdatedAt           string     `dynamodbav:"updated_at"`
	CompletedAt         string     `dynamodbav:"completed_at,omitempty"`
}

// OrderDynamoRepository persists Order aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//
// Every mutation carries a ConditionExpression on the version attribute.
// DynamoDB evaluates the condition and the write atomically, which is what
// serializes concurrent load appends and captures on the same order: the
// loser of a race gets ConditionalCheckFailedException, mapped here to
// interfaces.ErrVersionConflict.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

func (r *OrderDynamoRepository) AppendLoad(ctx context.Context, orderID string, load entities.Load, newTotalDelivered float64, newStatus entities.OrderStatus, expectedVersion int64) (entities.Order, error) {
	loadAV, err := attributevalue.MarshalMap(toLoadItem(load))
	if err != nil {
		return entities.Order{}, err
	}

	return r.conditionalUpdate(ctx, orderID, expectedVersion, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #loads = list_append(if_not_exists(#loads, :empty_list), :new_load), " +
			"#total_delivered = :total_delivered, #status = :status, #version = :next_version, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":empty_list":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":new_load":        &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: loadAV}}},
			":total_delivered": &types.AttributeValueMemberN{Value: floatToString(newTotalDelivered)},
			":status":          &types.AttributeValueMemberS{Value: string(newStatus)},
			":updated_at":      &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#loads":           "loads",
			"#total_delivered": "total_delivered",
			"#status":          "status",
			"#updated_at":      "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus, expectedVersion int64) (entities.Order, error) {
	return r.conditionalUpdate(ctx, orderID, expectedVersion, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #version = :next_version, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) RecordCapture(ctx context.Context, orderID string, finalAmount float64, expectedVersion int64) (entities.Order, error) {
	return r.conditionalUpdate(ctx, orderID, expectedVersion, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #final_amount = :final_amount, #completed_at = :completed_at, " +
			"#version = :next_version, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":       &types.AttributeValueMemberS{Value: string(entities.OrderStatusCompleted)},
			":final_amount": &types.AttributeValueMemberN{Value: floatToString(finalAmount)},
			":completed_at": &types.AttributeValueMemberS{Value: now},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":       "status",
			"#final_amount": "final_amount",
			"#completed_at": "completed_at",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) conditionalUpdate(
	ctx context.Context,
	orderID string,
	expectedVersion int64,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	values[":expected_version"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)}
	values[":next_version"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion+1, 10)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #version = :expected_version"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#version": "version"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, interfaces.ErrVersionConflict
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toLoadItem(l entities.Load) loadItem {
	return loadItem{
		ID:               l.ID,
		LoadNumber:       l.LoadNumber,
		TonnageDelivered: l.TonnageDelivered,
		DeliveryTime:     l.DeliveryTime.UTC().Format(time.RFC3339Nano),
		TruckID:          l.TruckID,
		DriverName:       l.DriverName,
		TicketNumber:     l.TicketNumber,
		Notes:            l.Notes,
		Status:           string(l.Status),
		CreatedAt:        l.CreatedAt.UTC().Format(time.RFC3339Nano),
		CreatedBy:        l.CreatedBy,
	}
}

func fromLoadItem(it loadItem) entities.Load {
	deliveryTime, _ := time.Parse(time.RFC3339Nano, it.DeliveryTime)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Load{
		ID:               it.ID,
		LoadNumber:       it.LoadNumber,
		TonnageDelivered: it.TonnageDelivered,
		DeliveryTime:     deliveryTime,
		TruckID:          it.TruckID,
		DriverName:       it.DriverName,
		TicketNumber:     it.TicketNumber,
		Notes:            it.Notes,
		Status:           entities.LoadStatus(it.Status),
		CreatedAt:        createdAt,
		CreatedBy:        it.CreatedBy,
	}
}

func toOrderItem(o entities.Order) orderItem {
	loads := make([]loadItem, 0, len(o.Loads))
	for _, l := range o.Loads {
		loads = append(loads, toLoadItem(l))
	}

	it := orderItem{
		ID:                  o.ID,
		CustomerID:          o.CustomerID,
		CustomerEmail:       o.CustomerEmail,
		MixID:               o.MixID,
		Destination:         o.Destination,
		SpecialInstructions: o.SpecialInstructions,
		Status:              string(o.Status),
		PaymentIntentID:     o.PaymentIntentID,
		AuthorizedAmount:    o.AuthorizedAmount,
		OriginalTonnage:     o.OriginalTonnage,
		TotalDelivered:      o.TotalDelivered,
		MaxAllowedTonnage:   o.MaxAllowedTonnage,
		Loads:               loads,
		IsMultiLoad:         o.IsMultiLoad,
		Version:             o.Version,
		CreatedAt:           o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.FinalAmount != 0 {
		it.FinalAmount = o.FinalAmount
	}
	if !o.CompletedAt.IsZero() {
		it.CompletedAt = o.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	loads := make([]entities.Load, 0, len(it.Loads))
	for _, l := range it.Loads {
		loads = append(loads, fromLoadItem(l))
	}

	o := entities.Order{
		ID:                  it.ID,
		CustomerID:          it.CustomerID,
		CustomerEmail:       it.CustomerEmail,
		MixID:               it.MixID,
		Destination:         it.Destination,
		SpecialInstructions: it.SpecialInstructions,
		Status:              entities.OrderStatus(it.Status),
		PaymentIntentID:     it.PaymentIntentID,
		AuthorizedAmount:    it.AuthorizedAmount,
		OriginalTonnage:     it.OriginalTonnage,
		TotalDelivered:      it.TotalDelivered,
		MaxAllowedTonnage:   it.MaxAllowedTonnage,
		Loads:               loads,
		IsMultiLoad:         it.IsMultiLoad,
		Version:             it.Version,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
	if it.FinalAmount != 0 {
		o.FinalAmount = it.FinalAmount
	}
	if it.CompletedAt != "" {
		o.CompletedAt, _ = time.Parse(time.RFC3339Nano, it.CompletedAt)
	}
	return o
}
