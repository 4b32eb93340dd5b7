package repository

import (
	"context"
	"sort"
	"time"

	"nagrik_seva/internal/domain/entities"
	"nagrik_seva/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultAuditTableName = "audit_log"

type auditItem struct {
	ID        string `dynamodbav:"id"`
	ActorID   string `dynamodbav:"actor_id"`
	ActorName string `dynamodbav:"actor_name"`
	ActorRole string `dynamodbav:"actor_role"`
	Action    string `dynamodbav:"action"`
	Details   string `dynamodbav:"details"`
	TargetID  string `dynamodbav:"target_id"`
	CreatedAt string `dynamodbav:"created_at"`
}

// AuditDynamoRepository persists the append-only audit log in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type AuditDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditRepository = (*AuditDynamoRepository)(nil)

func NewAuditDynamoRepository(ddb *dynamodb.Client) *AuditDynamoRepository {
	return &AuditDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_TABLE", defaultAuditTableName),
	}
}

func (r *AuditDynamoRepository) Append(ctx context.Context, e entities.AuditEntry) (entities.AuditEntry, error) {
	av, err := attributevalue.MarshalMap(auditItem{
		ID:        e.ID,
		ActorID:   e.ActorID,
		ActorName: e.ActorName,
		ActorRole: string(e.ActorRole),
		Action:    string(e.Action),
		Details:   e.Details,
		TargetID:  e.TargetID,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.AuditEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.AuditEntry{}, err
	}
	return e, nil
}

func (r *AuditDynamoRepository) ListRecent(ctx context.Context, limit int) ([]entities.AuditEntry, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.AuditEntry, 0, len(out.Items))
	for _, item := range out.Items {
		var it auditItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		entries = append(entries, entities.AuditEntry{
			ID:        it.ID,
			ActorID:   it.ActorID,
			ActorName: it.ActorName,
			ActorRole: entities.StaffRole(it.ActorRole),
			Action:    entities.AuditAction(it.Action),
			Details:   it.Details,
			TargetID:  it.TargetID,
			CreatedAt: createdAt,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
