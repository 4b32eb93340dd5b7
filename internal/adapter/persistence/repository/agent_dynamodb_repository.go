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

const defaultAgentsTableName = "agents"

type agentItem struct {
	ID              string   `dynamodbav:"id"`
	Name            string   `dynamodbav:"name"`
	Email           string   `dynamodbav:"email"`
	Role            string   `dynamodbav:"role"`
	Specializations []string `dynamodbav:"specializations"`
	IsOnline        bool     `dynamodbav:"is_online"`
	IsBlocked       bool     `dynamodbav:"is_blocked"`
	CurrentLoad     int      `dynamodbav:"current_load"`
	MaxCapacity     int      `dynamodbav:"max_capacity"`
	Version         int64    `dynamodbav:"version"`
	CreatedAt       string   `dynamodbav:"created_at"`
	UpdatedAt       string   `dynamodbav:"updated_at"`
}

// AgentDynamoRepository persists Agent entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Presence, the blocked flag and the load counter live on one item; every
// mutation bumps version under a condition so concurrent completions
// cannot lose updates.

type AgentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAgentRepository = (*AgentDynamoRepository)(nil)

func NewAgentDynamoRepository(ddb *dynamodb.Client) *AgentDynamoRepository {
	return &AgentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AGENTS_TABLE", defaultAgentsTableName),
	}
}

func (r *AgentDynamoRepository) Create(ctx context.Context, a entities.Agent) (entities.Agent, error) {
	av, err := attributevalue.MarshalMap(toAgentItem(a))
	if err != nil {
		return entities.Agent{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Agent{}, err
	}
	return a, nil
}

func (r *AgentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Agent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Agent{}, err
	}
	if len(out.Item) == 0 {
		return entities.Agent{}, nil
	}

	var it agentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Agent{}, err
	}
	return fromAgentItem(it), nil
}

func (r *AgentDynamoRepository) List(ctx context.Context) ([]entities.Agent, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	agents := make([]entities.Agent, 0, len(out.Items))
	for _, item := range out.Items {
		var it agentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		agents = append(agents, fromAgentItem(it))
	}
	return agents, nil
}

func (r *AgentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *AgentDynamoRepository) SetBlocked(ctx context.Context, id string, blocked bool, expectedVersion int64) (entities.Agent, error) {
	return r.update(ctx, id,
		"SET is_blocked = :flag, version = version + :one, updated_at = :now",
		"attribute_exists(#id) AND version = :expected",
		map[string]types.AttributeValue{
			":flag":     &types.AttributeValueMemberBOOL{Value: blocked},
			":one":      &types.AttributeValueMemberN{Value: "1"},
			":now":      &types.AttributeValueMemberS{Value: nowString()},
			":expected": &types.AttributeValueMemberN{Value: intToString(expectedVersion)},
		})
}

func (r *AgentDynamoRepository) SetOnline(ctx context.Context, id string, online bool, expectedVersion int64) (entities.Agent, error) {
	return r.update(ctx, id,
		"SET is_online = :flag, version = version + :one, updated_at = :now",
		"attribute_exists(#id) AND version = :expected",
		map[string]types.AttributeValue{
			":flag":     &types.AttributeValueMemberBOOL{Value: online},
			":one":      &types.AttributeValueMemberN{Value: "1"},
			":now":      &types.AttributeValueMemberS{Value: nowString()},
			":expected": &types.AttributeValueMemberN{Value: intToString(expectedVersion)},
		})
}

func (r *AgentDynamoRepository) AdjustLoad(ctx context.Context, id string, delta int, enforceCapacity bool, expectedVersion int64) (entities.Agent, error) {
	condition := "attribute_exists(#id) AND version = :expected"
	if delta > 0 && enforceCapacity {
		condition += " AND current_load < max_capacity"
	}
	if delta < 0 {
		condition += " AND current_load >= :decrement"
	}

	values := map[string]types.AttributeValue{
		":delta":    &types.AttributeValueMemberN{Value: intToString(int64(delta))},
		":one":      &types.AttributeValueMemberN{Value: "1"},
		":now":      &types.AttributeValueMemberS{Value: nowString()},
		":expected": &types.AttributeValueMemberN{Value: intToString(expectedVersion)},
	}
	if delta < 0 {
		values[":decrement"] = &types.AttributeValueMemberN{Value: intToString(int64(-delta))}
	}

	return r.update(ctx, id,
		"SET current_load = current_load + :delta, version = version + :one, updated_at = :now",
		condition, values)
}

func (r *AgentDynamoRepository) update(
	ctx context.Context,
	id, updateExpr, conditionExpr string,
	values map[string]types.AttributeValue,
) (entities.Agent, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(conditionExpr),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  map[string]string{"#id": "id"},
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Agent{}, nil
		}
		return entities.Agent{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Agent{}, nil
	}

	var it agentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Agent{}, err
	}
	return fromAgentItem(it), nil
}

func toAgentItem(a entities.Agent) agentItem {
	return agentItem{
		ID:              a.ID,
		Name:            a.Name,
		Email:           a.Email,
		Role:            string(a.Role),
		Specializations: a.Specializations.TagList(),
		IsOnline:        a.IsOnline,
		IsBlocked:       a.IsBlocked,
		CurrentLoad:     a.CurrentLoad,
		MaxCapacity:     a.MaxCapacity,
		Version:         a.Version,
		CreatedAt:       a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAgentItem(it agentItem) entities.Agent {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Agent{
		ID:              it.ID,
		Name:            it.Name,
		Email:           it.Email,
		Role:            entities.StaffRole(it.Role),
		Specializations: entities.SpecializationFromTags(it.Specializations),
		IsOnline:        it.IsOnline,
		IsBlocked:       it.IsBlocked,
		CurrentLoad:     it.CurrentLoad,
		MaxCapacity:     it.MaxCapacity,
		Version:         it.Version,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
