package repository

import (
	"context"
	"errors"
	"time"

	"asphaltworks/internal/domain/entities"
	"asphaltworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMixesTableName = "asphalt_mixes"
	mixesMixIDIndex       = "mix_id-index"
)

type asphaltMixItem struct {
	ID                 string  `dynamodbav:"id"`
	MixID              string  `dynamodbav:"mix_id"`
	Type               string  `dynamodbav:"type"`
	Name               string  `dynamodbav:"name"`
	Description        string  `dynamodbav:"description"`
	PricePerTon        float64 `dynamodbav:"price_per_ton"`
	PerformanceGrade   string  `dynamodbav:"performance_grade,omitempty"`
	Active             bool    `dynamodbav:"active"`
	AvailableForOrders bool    `dynamodbav:"available_for_orders"`
	CreatedAt          string  `dynamodbav:"created_at"`
	UpdatedAt          string  `dynamodbav:"updated_at"`
}

// AsphaltMixDynamoRepository persists AsphaltMix entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: mix_id-index (PK: mix_id)
type AsphaltMixDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAsphaltMixRepository = (*AsphaltMixDynamoRepository)(nil)

func NewAsphaltMixDynamoRepository(ddb *dynamodb.Client) *AsphaltMixDynamoRepository {
	return &AsphaltMixDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ASPHALT_MIXES_TABLE", defaultMixesTableName),
	}
}

func (r *AsphaltMixDynamoRepository) Create(ctx context.Context, m entities.AsphaltMix) (entities.AsphaltMix, error) {
	it := toAsphaltMixItem(m)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.AsphaltMix{}, err
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
		return entities.AsphaltMix{}, err
	}
	return m, nil
}

func (r *AsphaltMixDynamoRepository) GetByID(ctx context.Context, id string) (entities.AsphaltMix, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AsphaltMix{}, err
	}
	if len(out.Item) == 0 {
		return entities.AsphaltMix{}, nil
	}

	var it asphaltMixItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AsphaltMix{}, err
	}
	return fromAsphaltMixItem(it), nil
}

func (r *AsphaltMixDynamoRepository) GetByMixID(ctx context.Context, mixID string) (entities.AsphaltMix, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(mixesMixIDIndex),
		KeyConditionExpression: aws.String("mix_id = :mix_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mix_id": &types.AttributeValueMemberS{Value: mixID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.AsphaltMix{}, err
	}
	if len(out.Items) == 0 {
		return entities.AsphaltMix{}, nil
	}

	var it asphaltMixItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.AsphaltMix{}, err
	}
	return fromAsphaltMixItem(it), nil
}

func (r *AsphaltMixDynamoRepository) ListAvailable(ctx context.Context) ([]entities.AsphaltMix, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#active = :true AND #available = :true"),
		ExpressionAttributeNames: map[string]string{
			"#active":    "active",
			"#available": "available_for_orders",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}

	mixes := make([]entities.AsphaltMix, 0, len(out.Items))
	for _, raw := range out.Items {
		var it asphaltMixItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		mixes = append(mixes, fromAsphaltMixItem(it))
	}
	return mixes, nil
}

// Patch builds the update expression from the set fields only; nil patch
// fields never touch the stored attribute.
func (r *AsphaltMixDynamoRepository) Patch(ctx context.Context, id string, patch entities.AsphaltMixPatch) (entities.AsphaltMix, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
	}

	if patch.PricePerTon != nil {
		expr += ", #price_per_ton = :price_per_ton"
		vals[":price_per_ton"] = &types.AttributeValueMemberN{Value: floatToString(*patch.PricePerTon)}
		names["#price_per_ton"] = "price_per_ton"
	}
	if patch.Description != nil {
		expr += ", #description = :description"
		vals[":description"] = &types.AttributeValueMemberS{Value: *patch.Description}
		names["#description"] = "description"
	}
	if patch.Active != nil {
		expr += ", #active = :active"
		vals[":active"] = &types.AttributeValueMemberBOOL{Value: *patch.Active}
		names["#active"] = "active"
	}
	if patch.AvailableForOrders != nil {
		expr += ", #available = :available"
		vals[":available"] = &types.AttributeValueMemberBOOL{Value: *patch.AvailableForOrders}
		names["#available"] = "available_for_orders"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.AsphaltMix{}, nil
		}
		return entities.AsphaltMix{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.AsphaltMix{}, nil
	}
	var it asphaltMixItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.AsphaltMix{}, err
	}
	return fromAsphaltMixItem(it), nil
}

func toAsphaltMixItem(m entities.AsphaltMix) asphaltMixItem {
	return asphaltMixItem{
		ID:                 m.ID,
		MixID:              m.MixID,
		Type:               m.Type,
		Name:               m.Name,
		Description:        m.Description,
		PricePerTon:        m.PricePerTon,
		PerformanceGrade:   m.PerformanceGrade,
		Active:             m.Active,
		AvailableForOrders: m.AvailableForOrders,
		CreatedAt:          m.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          m.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAsphaltMixItem(it asphaltMixItem) entities.AsphaltMix {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.AsphaltMix{
		ID:                 it.ID,
		MixID:              it.MixID,
		Type:               it.Type,
		Name:               it.Name,
		Description:        it.Description,
		PricePerTon:        it.PricePerTon,
		PerformanceGrade:   it.PerformanceGrade,
		Active:             it.Active,
		AvailableForOrders: it.AvailableForOrders,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}
