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

const defaultRequestsTableName = "service_requests"

// trackingGuardPrefix namespaces the uniqueness guard items that reserve
// tracking codes inside the requests table.
const trackingGuardPrefix = "code#"

type documentItem struct {
	Name        string `dynamodbav:"name"`
	LocationRef string `dynamodbav:"location_ref"`
}

type requestItem struct {
	ID              string            `dynamodbav:"id"`
	TrackingCode    string            `dynamodbav:"tracking_code"`
	UserID          string            `dynamodbav:"user_id"`
	ServiceType     string            `dynamodbav:"service_type"`
	TargetID        string            `dynamodbav:"target_id"`
	TargetName      string            `dynamodbav:"target_name"`
	Category        string            `dynamodbav:"category"`
	Status          string            `dynamodbav:"status"`
	AssignedAgentID string            `dynamodbav:"assigned_agent_id"`
	ApplicationData map[string]string `dynamodbav:"application_data"`

	OfficialFee    int64  `dynamodbav:"official_fee"`
	ServiceFee     int64  `dynamodbav:"service_fee"`
	Discount       int64  `dynamodbav:"discount"`
	TotalAmount    int64  `dynamodbav:"total_amount"`
	CouponCode     string `dynamodbav:"coupon_code"`
	IsPaid         bool   `dynamodbav:"is_paid"`
	TransactionRef string `dynamodbav:"transaction_ref"`
	ProofRef       string `dynamodbav:"proof_ref"`
	PaymentDate    string `dynamodbav:"payment_date"`

	Documents              []documentItem `dynamodbav:"documents"`
	ResultRef              string         `dynamodbav:"result_ref"`
	RejectionReason        string         `dynamodbav:"rejection_reason"`
	PaymentRejectionReason string         `dynamodbav:"payment_rejection_reason"`
	PriorStatus            string         `dynamodbav:"prior_status"`
	AgentNotes             string         `dynamodbav:"agent_notes"`

	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// RequestDynamoRepository persists ServiceRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Tracking-code uniqueness is enforced by a guard item keyed
// "code#<tracking_code>" written in the same transaction as the request,
// so two racing submissions can never share a code.

type RequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRequestRepository = (*RequestDynamoRepository)(nil)

func NewRequestDynamoRepository(ddb *dynamodb.Client) *RequestDynamoRepository {
	return &RequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *RequestDynamoRepository) Create(ctx context.Context, req entities.ServiceRequest) (entities.ServiceRequest, error) {
	av, err := attributevalue.MarshalMap(toRequestItem(req))
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	guard := map[string]types.AttributeValue{
		"id":         &types.AttributeValueMemberS{Value: trackingGuardPrefix + req.TrackingCode},
		"request_id": &types.AttributeValueMemberS{Value: req.ID},
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     guard,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	return req, nil
}

func (r *RequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromRequestItem(it), nil
}

func (r *RequestDynamoRepository) GetByTrackingCode(ctx context.Context, code string) (entities.ServiceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: trackingGuardPrefix + code},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var guard struct {
		RequestID string `dynamodbav:"request_id"`
	}
	if err := attributevalue.UnmarshalMap(out.Item, &guard); err != nil {
		return entities.ServiceRequest{}, err
	}
	return r.GetByID(ctx, guard.RequestID)
}

func (r *RequestDynamoRepository) ListByAgent(ctx context.Context, agentID string) ([]entities.ServiceRequest, error) {
	// Tables stay small enough for a filtered scan; an assigned_agent_id
	// GSI is the upgrade path if that stops being true.
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("assigned_agent_id = :agent"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":agent": &types.AttributeValueMemberS{Value: agentID},
		},
	})
	if err != nil {
		return nil, err
	}

	requests := make([]entities.ServiceRequest, 0, len(out.Items))
	for _, item := range out.Items {
		var it requestItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		requests = append(requests, fromRequestItem(it))
	}
	return requests, nil
}

func (r *RequestDynamoRepository) Save(ctx context.Context, req entities.ServiceRequest, expectedVersion int64) (entities.ServiceRequest, error) {
	req.Version = expectedVersion + 1
	req.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toRequestItem(req))
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: intToString(expectedVersion)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceRequest{}, nil
		}
		return entities.ServiceRequest{}, err
	}
	return req, nil
}

func toRequestItem(req entities.ServiceRequest) requestItem {
	it := requestItem{
		ID:              req.ID,
		TrackingCode:    req.TrackingCode,
		UserID:          req.UserID,
		ServiceType:     req.ServiceType,
		TargetID:        req.TargetID,
		TargetName:      req.TargetName,
		Category:        req.Category,
		Status:          string(req.Status),
		AssignedAgentID: req.AssignedAgentID,
		ApplicationData: req.ApplicationData,

		OfficialFee:    req.PaymentDetails.OfficialFee,
		ServiceFee:     req.PaymentDetails.ServiceFee,
		Discount:       req.PaymentDetails.Discount,
		TotalAmount:    req.PaymentDetails.TotalAmount,
		CouponCode:     req.PaymentDetails.CouponCode,
		IsPaid:         req.PaymentDetails.IsPaid,
		TransactionRef: req.PaymentDetails.TransactionRef,
		ProofRef:       req.PaymentDetails.ProofRef,

		ResultRef:              req.ResultRef,
		RejectionReason:        req.RejectionReason,
		PaymentRejectionReason: req.PaymentRejectionReason,
		PriorStatus:            string(req.PriorStatus),
		AgentNotes:             req.AgentNotes,

		Version:   req.Version,
		CreatedAt: req.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: req.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if req.PaymentDetails.PaymentDate != nil {
		it.PaymentDate = req.PaymentDetails.PaymentDate.UTC().Format(time.RFC3339Nano)
	}
	for _, d := range req.UploadedDocuments {
		it.Documents = append(it.Documents, documentItem{Name: d.Name, LocationRef: d.LocationRef})
	}
	return it
}

func fromRequestItem(it requestItem) entities.ServiceRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	req := entities.ServiceRequest{
		ID:              it.ID,
		TrackingCode:    it.TrackingCode,
		UserID:          it.UserID,
		ServiceType:     it.ServiceType,
		TargetID:        it.TargetID,
		TargetName:      it.TargetName,
		Category:        it.Category,
		Status:          entities.RequestStatus(it.Status),
		AssignedAgentID: it.AssignedAgentID,
		ApplicationData: it.ApplicationData,
		PaymentDetails: entities.PaymentDetails{
			OfficialFee:    it.OfficialFee,
			ServiceFee:     it.ServiceFee,
			Discount:       it.Discount,
			TotalAmount:    it.TotalAmount,
			CouponCode:     it.CouponCode,
			IsPaid:         it.IsPaid,
			TransactionRef: it.TransactionRef,
			ProofRef:       it.ProofRef,
		},
		ResultRef:              it.ResultRef,
		RejectionReason:        it.RejectionReason,
		PaymentRejectionReason: it.PaymentRejectionReason,
		PriorStatus:            entities.RequestStatus(it.PriorStatus),
		AgentNotes:             it.AgentNotes,
		Version:                it.Version,
		CreatedAt:              createdAt,
		UpdatedAt:              updatedAt,
	}
	if it.PaymentDate != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.PaymentDate); err == nil {
			req.PaymentDetails.PaymentDate = &t
		}
	}
	for _, d := range it.Documents {
		req.UploadedDocuments = append(req.UploadedDocuments, entities.UploadedDocument{Name: d.Name, LocationRef: d.LocationRef})
	}
	return req
}
