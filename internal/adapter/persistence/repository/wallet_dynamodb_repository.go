package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"nagrik_seva/internal/domain/entities"
	"nagrik_seva/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWalletsTableName = "user_wallets"
	defaultLedgerTableName  = "wallet_ledger"
)

type walletItem struct {
	UserID      string         `dynamodbav:"user_id"`
	Balance     int64          `dynamodbav:"balance"`
	PINHash     string         `dynamodbav:"pin_hash"`
	CouponUsage map[string]int `dynamodbav:"coupon_usage"`
	Version     int64          `dynamodbav:"version"`
	UpdatedAt   string         `dynamodbav:"updated_at"`
}

type ledgerItem struct {
	ID              string `dynamodbav:"id"`
	UserID          string `dynamodbav:"user_id"`
	Amount          int64  `dynamodbav:"amount"`
	Direction       string `dynamodbav:"direction"`
	Status          string `dynamodbav:"status"`
	ExternalRef     string `dynamodbav:"external_ref"`
	RelatedRequest  string `dynamodbav:"related_request"`
	RejectionReason string `dynamodbav:"rejection_reason"`
	CreatedAt       string `dynamodbav:"created_at"`
	DecidedAt       string `dynamodbav:"decided_at"`
}

// WalletDynamoRepository persists wallets and their ledger in DynamoDB.
//
// Table requirements:
//   - wallets:  PK user_id (string)
//   - ledger:   PK id (string)
//
// Payments and top-up decisions span wallet, ledger and request items, so
// every multi-item mutation goes through TransactWriteItems: a failed
// condition anywhere cancels the whole group.

type WalletDynamoRepository struct {
	ddb           *dynamodb.Client
	walletsTable  string
	ledgerTable   string
	requestsTable string
}

var _ interfaces.IWalletRepository = (*WalletDynamoRepository)(nil)

func NewWalletDynamoRepository(ddb *dynamodb.Client) *WalletDynamoRepository {
	return &WalletDynamoRepository{
		ddb:           ddb,
		walletsTable:  getenvDefault("WALLETS_TABLE", defaultWalletsTableName),
		ledgerTable:   getenvDefault("WALLET_LEDGER_TABLE", defaultLedgerTableName),
		requestsTable: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *WalletDynamoRepository) GetWallet(ctx context.Context, userID string) (entities.UserWallet, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.walletsTable),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.UserWallet{}, err
	}
	if len(out.Item) == 0 {
		return entities.UserWallet{}, nil
	}

	var it walletItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UserWallet{}, err
	}
	return fromWalletItem(it), nil
}

// SetPIN upserts the wallet so that a user can secure it before the first
// top-up ever lands.
func (r *WalletDynamoRepository) SetPIN(ctx context.Context, userID, pinHash string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.walletsTable),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		UpdateExpression: aws.String(
			"SET pin_hash = :hash, balance = if_not_exists(balance, :zero), " +
				"coupon_usage = if_not_exists(coupon_usage, :empty), " +
				"version = if_not_exists(version, :zero) + :one, updated_at = :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":hash":  &types.AttributeValueMemberS{Value: pinHash},
			":zero":  &types.AttributeValueMemberN{Value: "0"},
			":empty": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{}},
			":one":   &types.AttributeValueMemberN{Value: "1"},
			":now":   &types.AttributeValueMemberS{Value: nowString()},
		},
	})
	return err
}

func (r *WalletDynamoRepository) DebitForRequest(ctx context.Context, p interfaces.WalletDebitParams) (entities.UserWallet, error) {
	entryAV, err := attributevalue.MarshalMap(toLedgerItem(p.Entry))
	if err != nil {
		return entities.UserWallet{}, err
	}

	walletUpdate := "SET balance = balance - :amount, version = version + :one, updated_at = :now"
	walletCondition := "attribute_exists(user_id) AND version = :expected AND balance >= :amount"
	walletValues := map[string]types.AttributeValue{
		":amount":   &types.AttributeValueMemberN{Value: intToString(p.Amount)},
		":one":      &types.AttributeValueMemberN{Value: "1"},
		":now":      &types.AttributeValueMemberS{Value: nowString()},
		":expected": &types.AttributeValueMemberN{Value: intToString(p.WalletVersion)},
	}
	walletNames := map[string]string(nil)
	if p.CouponCode != "" {
		walletUpdate += ", coupon_usage.#code = if_not_exists(coupon_usage.#code, :zero) + :one"
		walletValues[":zero"] = &types.AttributeValueMemberN{Value: "0"}
		walletNames = map[string]string{"#code": p.CouponCode}
		if p.UsageLimit > 0 {
			walletCondition += " AND (attribute_not_exists(coupon_usage.#code) OR coupon_usage.#code < :limit)"
			walletValues[":limit"] = &types.AttributeValueMemberN{Value: intToString(int64(p.UsageLimit))}
		}
	}

	paidValues := map[string]types.AttributeValue{
		":discount": &types.AttributeValueMemberN{Value: intToString(p.Paid.Discount)},
		":total":    &types.AttributeValueMemberN{Value: intToString(p.Paid.TotalAmount)},
		":coupon":   &types.AttributeValueMemberS{Value: p.Paid.CouponCode},
		":paid":     &types.AttributeValueMemberBOOL{Value: true},
		":txref":    &types.AttributeValueMemberS{Value: p.Paid.TransactionRef},
		":paidAt":   &types.AttributeValueMemberS{Value: timeString(p.Paid.PaymentDate)},
		":unpaid":   &types.AttributeValueMemberBOOL{Value: false},
		":one":      &types.AttributeValueMemberN{Value: "1"},
		":now":      &types.AttributeValueMemberS{Value: nowString()},
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: &types.Update{
				TableName: aws.String(r.walletsTable),
				Key: map[string]types.AttributeValue{
					"user_id": &types.AttributeValueMemberS{Value: p.UserID},
				},
				UpdateExpression:          aws.String(walletUpdate),
				ConditionExpression:       aws.String(walletCondition),
				ExpressionAttributeValues: walletValues,
				ExpressionAttributeNames:  walletNames,
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.ledgerTable),
				Item:                     entryAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Update: &types.Update{
				TableName: aws.String(r.requestsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: p.RequestID},
				},
				UpdateExpression: aws.String(
					"SET discount = :discount, total_amount = :total, coupon_code = :coupon, " +
						"is_paid = :paid, transaction_ref = :txref, payment_date = :paidAt, " +
						"version = version + :one, updated_at = :now"),
				ConditionExpression:       aws.String("attribute_exists(#id) AND is_paid = :unpaid"),
				ExpressionAttributeValues: paidValues,
				ExpressionAttributeNames:  map[string]string{"#id": "id"},
			}},
		},
	})
	if err != nil {
		if isTransactionCanceled(err) {
			return entities.UserWallet{}, nil
		}
		return entities.UserWallet{}, err
	}

	return r.GetWallet(ctx, p.UserID)
}

func (r *WalletDynamoRepository) CreateTopUpClaim(ctx context.Context, e entities.WalletLedgerEntry) (entities.WalletLedgerEntry, error) {
	av, err := attributevalue.MarshalMap(toLedgerItem(e))
	if err != nil {
		return entities.WalletLedgerEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.ledgerTable),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.WalletLedgerEntry{}, err
	}
	return e, nil
}

func (r *WalletDynamoRepository) GetLedgerEntry(ctx context.Context, id string) (entities.WalletLedgerEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.ledgerTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WalletLedgerEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.WalletLedgerEntry{}, nil
	}

	var it ledgerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WalletLedgerEntry{}, err
	}
	return fromLedgerItem(it), nil
}

func (r *WalletDynamoRepository) DecideTopUp(ctx context.Context, entryID string, approve bool, reason string, decidedAt time.Time) (entities.WalletLedgerEntry, error) {
	entry, err := r.GetLedgerEntry(ctx, entryID)
	if err != nil {
		return entities.WalletLedgerEntry{}, err
	}
	if entry.ID == "" {
		return entities.WalletLedgerEntry{}, nil
	}

	status := entities.LedgerRejected
	if approve {
		status = entities.LedgerSuccess
	}

	ledgerUpdate := types.Update{
		TableName: aws.String(r.ledgerTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entryID},
		},
		UpdateExpression: aws.String(
			"SET #status = :status, rejection_reason = :reason, decided_at = :decidedAt"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":    &types.AttributeValueMemberS{Value: string(status)},
			":reason":    &types.AttributeValueMemberS{Value: reason},
			":decidedAt": &types.AttributeValueMemberS{Value: decidedAt.UTC().Format(time.RFC3339Nano)},
			":pending":   &types.AttributeValueMemberS{Value: string(entities.LedgerPending)},
		},
		ExpressionAttributeNames: map[string]string{"#id": "id", "#status": "status"},
	}

	items := []types.TransactWriteItem{{Update: &ledgerUpdate}}
	if approve {
		items = append(items, types.TransactWriteItem{Update: r.creditUpdate(entry.UserID, entry.Amount)})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isTransactionCanceled(err) {
			return entities.WalletLedgerEntry{}, nil
		}
		return entities.WalletLedgerEntry{}, err
	}

	entry.Status = status
	entry.RejectionReason = reason
	entry.DecidedAt = &decidedAt
	return entry, nil
}

func (r *WalletDynamoRepository) CreditInstant(ctx context.Context, e entities.WalletLedgerEntry) (entities.UserWallet, error) {
	av, err := attributevalue.MarshalMap(toLedgerItem(e))
	if err != nil {
		return entities.UserWallet{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.ledgerTable),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Update: r.creditUpdate(e.UserID, e.Amount)},
		},
	})
	if err != nil {
		if isTransactionCanceled(err) {
			return entities.UserWallet{}, nil
		}
		return entities.UserWallet{}, err
	}

	return r.GetWallet(ctx, e.UserID)
}

func (r *WalletDynamoRepository) ListLedger(ctx context.Context, userID string, limit int) ([]entities.WalletLedgerEntry, error) {
	// Filtered scan keeps local setups to a single table definition; a
	// user_id GSI is the upgrade path once volume demands it.
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.ledgerTable),
		FilterExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.WalletLedgerEntry, 0, len(out.Items))
	for _, item := range out.Items {
		var it ledgerItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromLedgerItem(it))
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// creditUpdate upserts the wallet so gateway top-ups work for users who have
// never touched their wallet before.
func (r *WalletDynamoRepository) creditUpdate(userID string, amount int64) *types.Update {
	return &types.Update{
		TableName: aws.String(r.walletsTable),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		UpdateExpression: aws.String(
			"SET balance = if_not_exists(balance, :zero) + :amount, " +
				"coupon_usage = if_not_exists(coupon_usage, :empty), " +
				"pin_hash = if_not_exists(pin_hash, :blank), " +
				"version = if_not_exists(version, :zero) + :one, updated_at = :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount": &types.AttributeValueMemberN{Value: intToString(amount)},
			":zero":   &types.AttributeValueMemberN{Value: "0"},
			":empty":  &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{}},
			":blank":  &types.AttributeValueMemberS{Value: ""},
			":one":    &types.AttributeValueMemberN{Value: "1"},
			":now":    &types.AttributeValueMemberS{Value: nowString()},
		},
	}
}

func isTransactionCanceled(err error) bool {
	var tce *types.TransactionCanceledException
	return errors.As(err, &tce)
}

func toLedgerItem(e entities.WalletLedgerEntry) ledgerItem {
	return ledgerItem{
		ID:              e.ID,
		UserID:          e.UserID,
		Amount:          e.Amount,
		Direction:       string(e.Direction),
		Status:          string(e.Status),
		ExternalRef:     e.ExternalRef,
		RelatedRequest:  e.RelatedRequest,
		RejectionReason: e.RejectionReason,
		CreatedAt:       e.CreatedAt.UTC().Format(time.RFC3339Nano),
		DecidedAt:       timeString(e.DecidedAt),
	}
}

func fromLedgerItem(it ledgerItem) entities.WalletLedgerEntry {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	e := entities.WalletLedgerEntry{
		ID:              it.ID,
		UserID:          it.UserID,
		Amount:          it.Amount,
		Direction:       entities.LedgerDirection(it.Direction),
		Status:          entities.LedgerStatus(it.Status),
		ExternalRef:     it.ExternalRef,
		RelatedRequest:  it.RelatedRequest,
		RejectionReason: it.RejectionReason,
		CreatedAt:       createdAt,
	}
	if it.DecidedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.DecidedAt); err == nil {
			e.DecidedAt = &t
		}
	}
	return e
}

func fromWalletItem(it walletItem) entities.UserWallet {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.UserWallet{
		UserID:      it.UserID,
		Balance:     it.Balance,
		PINHash:     it.PINHash,
		CouponUsage: it.CouponUsage,
		Version:     it.Version,
		UpdatedAt:   updatedAt,
	}
}
