package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"

	// quoteSequenceKey is the id of the counter item that backs NextSequence.
	// It lives in the quotes table and is filtered out of List scans.
	quoteSequenceKey = "_sequence"
)

type quoteItem struct {
	ID        string           `dynamodbav:"id"`
	EnquiryID string           `dynamodbav:"enquiry_id"`
	Name      string           `dynamodbav:"name"`
	Channel   string           `dynamodbav:"channel"`
	Suburb    string           `dynamodbav:"suburb"`
	Frequency string           `dynamodbav:"frequency"`
	Status    string           `dynamodbav:"status"`
	Details   requirementsItem `dynamodbav:"details"`
	CreatedAt string           `dynamodbav:"created_at"`
	UpdatedAt string           `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// NextSequence is an atomic ADD on a dedicated counter item, so concurrent
// quote generation never hands out the same number twice.
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: tableNameFromEnv("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	if id == quoteSequenceKey {
		return entities.Quote{}, nil
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	var quotes []entities.Quote

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#id <> :seq"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":seq": &types.AttributeValueMemberS{Value: quoteSequenceKey},
		},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			quotes = append(quotes, fromQuoteItem(it))
		}
	}

	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})
	return quotes, nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) NextSequence(ctx context.Context) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: quoteSequenceKey},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("quote sequence attribute missing from update response")
	}
	return strconv.Atoi(n.Value)
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:        q.ID,
		EnquiryID: q.EnquiryID,
		Name:      q.Name,
		Channel:   string(q.Channel),
		Suburb:    q.Suburb,
		Frequency: q.Frequency,
		Status:    string(q.Status),
		Details:   *toRequirementsItem(&q.Details),
		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Quote{
		ID:        it.ID,
		EnquiryID: it.EnquiryID,
		Name:      it.Name,
		Channel:   entities.Channel(it.Channel),
		Suburb:    it.Suburb,
		Frequency: it.Frequency,
		Status:    entities.QuoteStatus(it.Status),
		Details:   *fromRequirementsItem(&it.Details),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
