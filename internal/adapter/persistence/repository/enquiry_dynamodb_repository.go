package repository

import (
	"context"
	"errors"
	"os"
	"sort"
	"time"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEnquiriesTableName = "enquiries"

// tableNameFromEnv resolves a storage table name, falling back to the
// default when the env var is unset.
func tableNameFromEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

type requirementsItem struct {
	Bedrooms    int    `dynamodbav:"bedrooms"`
	Bathrooms   int    `dynamodbav:"bathrooms"`
	Living      int    `dynamodbav:"living"`
	Kitchen     int    `dynamodbav:"kitchen"`
	Frequency   string `dynamodbav:"frequency"`
	Oven        bool   `dynamodbav:"oven"`
	Sheets      bool   `dynamodbav:"sheets"`
	Windows     bool   `dynamodbav:"windows"`
	WindowCount int    `dynamodbav:"window_count"`
	Organising  bool   `dynamodbav:"organising"`
	Notes       string `dynamodbav:"notes,omitempty"`
}

type enquiryItem struct {
	ID        string            `dynamodbav:"id"`
	Name      string            `dynamodbav:"name"`
	Channel   string            `dynamodbav:"channel"`
	Suburb    string            `dynamodbav:"suburb"`
	Message   string            `dynamodbav:"message"`
	Avatar    string            `dynamodbav:"avatar"`
	Status    string            `dynamodbav:"status"`
	Details   *requirementsItem `dynamodbav:"details,omitempty"`
	QuoteID   string            `dynamodbav:"quote_id,omitempty"`
	CreatedAt string            `dynamodbav:"created_at"`
	UpdatedAt string            `dynamodbav:"updated_at"`
}

// EnquiryDynamoRepository persists Enquiry entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// List scans the table and sorts by created_at descending, preserving the
// most-recent-first contract the in-memory driver gets from head insertion.
type EnquiryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEnquiryRepository = (*EnquiryDynamoRepository)(nil)

func NewEnquiryDynamoRepository(ddb *dynamodb.Client) *EnquiryDynamoRepository {
	return &EnquiryDynamoRepository{
		ddb:       ddb,
		tableName: tableNameFromEnv("ENQUIRIES_TABLE", defaultEnquiriesTableName),
	}
}

func (r *EnquiryDynamoRepository) Create(ctx context.Context, e entities.Enquiry) (entities.Enquiry, error) {
	av, err := attributevalue.MarshalMap(toEnquiryItem(e))
	if err != nil {
		return entities.Enquiry{}, err
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
		return entities.Enquiry{}, err
	}
	return e, nil
}

func (r *EnquiryDynamoRepository) GetByID(ctx context.Context, id string) (entities.Enquiry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Enquiry{}, err
	}
	if len(out.Item) == 0 {
		return entities.Enquiry{}, nil
	}

	var it enquiryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Enquiry{}, err
	}
	return fromEnquiryItem(it), nil
}

func (r *EnquiryDynamoRepository) List(ctx context.Context) ([]entities.Enquiry, error) {
	var enquiries []entities.Enquiry

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it enquiryItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			enquiries = append(enquiries, fromEnquiryItem(it))
		}
	}

	sort.SliceStable(enquiries, func(i, j int) bool {
		return enquiries[i].CreatedAt.After(enquiries[j].CreatedAt)
	})
	return enquiries, nil
}

func (r *EnquiryDynamoRepository) Update(ctx context.Context, e entities.Enquiry) (entities.Enquiry, error) {
	av, err := attributevalue.MarshalMap(toEnquiryItem(e))
	if err != nil {
		return entities.Enquiry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Enquiry{}, nil
		}
		return entities.Enquiry{}, err
	}
	return e, nil
}

func toEnquiryItem(e entities.Enquiry) enquiryItem {
	return enquiryItem{
		ID:        e.ID,
		Name:      e.Name,
		Channel:   string(e.Channel),
		Suburb:    e.Suburb,
		Message:   e.Message,
		Avatar:    e.Avatar,
		Status:    string(e.Status),
		Details:   toRequirementsItem(e.Details),
		QuoteID:   e.QuoteID,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEnquiryItem(it enquiryItem) entities.Enquiry {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Enquiry{
		ID:        it.ID,
		Name:      it.Name,
		Channel:   entities.Channel(it.Channel),
		Suburb:    it.Suburb,
		Message:   it.Message,
		Avatar:    it.Avatar,
		Status:    entities.EnquiryStatus(it.Status),
		Details:   fromRequirementsItem(it.Details),
		QuoteID:   it.QuoteID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func toRequirementsItem(req *entities.Requirements) *requirementsItem {
	if req == nil {
		return nil
	}
	return &requirementsItem{
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Living:      req.Living,
		Kitchen:     req.Kitchen,
		Frequency:   string(req.Frequency),
		Oven:        req.Oven,
		Sheets:      req.Sheets,
		Windows:     req.Windows,
		WindowCount: req.WindowCount,
		Organising:  req.Organising,
		Notes:       req.Notes,
	}
}

func fromRequirementsItem(it *requirementsItem) *entities.Requirements {
	if it == nil {
		return nil
	}
	return &entities.Requirements{
		Bedrooms:    it.Bedrooms,
		Bathrooms:   it.Bathrooms,
		Living:      it.Living,
		Kitchen:     it.Kitchen,
		Frequency:   entities.Frequency(it.Frequency),
		Oven:        it.Oven,
		Sheets:      it.Sheets,
		Windows:     it.Windows,
		WindowCount: it.WindowCount,
		Organising:  it.Organising,
		Notes:       it.Notes,
	}
}
