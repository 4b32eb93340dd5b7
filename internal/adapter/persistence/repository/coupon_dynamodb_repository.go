package repository

import (
	"context"
	"errors"
	"time"

	"nagrik_seva/internal/domain/entities"
	"nagrik_seva/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCouponsTableName = "coupons"

type couponItem struct {
	Code              string `dynamodbav:"code"`
	DiscountType      string `dynamodbav:"discount_type"`
	Value             int64  `dynamodbav:"value"`
	UsageLimitPerUser int    `dynamodbav:"usage_limit_per_user"`
	MinOrderValue     int64  `dynamodbav:"min_order_value"`
	IsActive          bool   `dynamodbav:"is_active"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// CouponDynamoRepository persists Coupon entities in DynamoDB.
//
// Table requirements:
//   - PK: code (string, already normalized)

type CouponDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICouponRepository = (*CouponDynamoRepository)(nil)

func NewCouponDynamoRepository(ddb *dynamodb.Client) *CouponDynamoRepository {
	return &CouponDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUPONS_TABLE", defaultCouponsTableName),
	}
}

func (r *CouponDynamoRepository) Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error) {
	av, err := attributevalue.MarshalMap(toCouponItem(c))
	if err != nil {
		return entities.Coupon{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#code)"),
		ExpressionAttributeNames: map[string]string{"#code": "code"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Coupon{}, nil
		}
		return entities.Coupon{}, err
	}
	return c, nil
}

func (r *CouponDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Coupon, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
	})
	if err != nil {
		return entities.Coupon{}, err
	}
	if len(out.Item) == 0 {
		return entities.Coupon{}, nil
	}

	var it couponItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Coupon{}, err
	}
	return fromCouponItem(it), nil
}

func (r *CouponDynamoRepository) Deactivate(ctx context.Context, code string) (entities.Coupon, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
		ConditionExpression: aws.String("attribute_exists(#code)"),
		UpdateExpression:    aws.String("SET is_active = :off"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":off": &types.AttributeValueMemberBOOL{Value: false},
		},
		ExpressionAttributeNames: map[string]string{"#code": "code"},
		ReturnValues:             types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Coupon{}, nil
		}
		return entities.Coupon{}, err
	}

	var it couponItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Coupon{}, err
	}
	return fromCouponItem(it), nil
}

func toCouponItem(c entities.Coupon) couponItem {
	return couponItem{
		Code:              c.Code,
		DiscountType:      string(c.DiscountType),
		Value:             c.Value,
		UsageLimitPerUser: c.UsageLimitPerUser,
		MinOrderValue:     c.MinOrderValue,
		IsActive:          c.IsActive,
		CreatedAt:         c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCouponItem(it couponItem) entities.Coupon {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Coupon{
		Code:              it.Code,
		DiscountType:      entities.DiscountType(it.DiscountType),
		Value:             it.Value,
		UsageLimitPerUser: it.UsageLimitPerUser,
		MinOrderValue:     it.MinOrderValue,
		IsActive:          it.IsActive,
		CreatedAt:         createdAt,
	}
}
