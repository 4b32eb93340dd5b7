package repository

import (
	"context"

	"nagrik_seva/internal/domain/entities"
	"nagrik_seva/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCatalogTableName = "catalog_targets"

type feeRuleItem struct {
	Category string `dynamodbav:"category"`
	Gender   string `dynamodbav:"gender"`
	Amount   int64  `dynamodbav:"amount"`
}

type formFieldItem struct {
	Name     string `dynamodbav:"name"`
	Label    string `dynamodbav:"label"`
	Type     string `dynamodbav:"type"`
	Required bool   `dynamodbav:"required"`
}

type catalogItem struct {
	PK            string          `dynamodbav:"pk"`
	ServiceType   string          `dynamodbav:"service_type"`
	TargetID      string          `dynamodbav:"target_id"`
	Name          string          `dynamodbav:"name"`
	Category      string          `dynamodbav:"category"`
	ServiceFee    int64           `dynamodbav:"service_fee"`
	FeeRules      []feeRuleItem   `dynamodbav:"fee_rules"`
	FormFields    []formFieldItem `dynamodbav:"form_fields"`
	CategoryField string          `dynamodbav:"category_field"`
	GenderField   string          `dynamodbav:"gender_field"`
	IsActive      bool            `dynamodbav:"is_active"`
}

// CatalogDynamoRepository reads the master-data table that the catalog
// service owns. The engine only ever reads it.
//
// Table requirements:
//   - PK: pk (string, "<service_type>#<target_id>")

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogProvider = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
	}
}

func (r *CatalogDynamoRepository) GetTarget(ctx context.Context, serviceType, targetID string) (entities.CatalogTarget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: serviceType + "#" + targetID},
		},
	})
	if err != nil {
		return entities.CatalogTarget{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogTarget{}, nil
	}

	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogTarget{}, err
	}

	target := entities.CatalogTarget{
		ServiceType:   it.ServiceType,
		ID:            it.TargetID,
		Name:          it.Name,
		Category:      it.Category,
		ServiceFee:    it.ServiceFee,
		CategoryField: it.CategoryField,
		GenderField:   it.GenderField,
		IsActive:      it.IsActive,
	}
	for _, fr := range it.FeeRules {
		target.FeeRules = append(target.FeeRules, entities.FeeRule{
			Category: fr.Category,
			Gender:   fr.Gender,
			Amount:   fr.Amount,
		})
	}
	for _, ff := range it.FormFields {
		target.FormFields = append(target.FormFields, entities.FormField{
			Name:     ff.Name,
			Label:    ff.Label,
			Type:     ff.Type,
			Required: ff.Required,
		})
	}
	return target, nil
}
