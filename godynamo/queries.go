package godynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.openly.dev/pointy"

	"github.com/ggarcia209/go-aws-wrappers/goaws"
)

// QueriesLogic defines common methods for reading and writing table items
//
//go:generate mockgen -destination=../mocks/godynamomock/queries.go -package=godynamomock . QueriesLogic
type QueriesLogic interface {
	GetAllItems(ctx context.Context, name string, attrs ...string) (*ScanResults, error)
	GetItem(ctx context.Context, key any, name string, attrs ...string) (Item, error)
	PutItems(ctx context.Context, source ItemSource, name string) (*BatchWriteResponse, error)
	DeleteItems(ctx context.Context, source ItemSource, name string) (*BatchWriteResponse, error)
}

// DynamoDBQueriesClientAPI defines the interface for the AWS DynamoDB client methods used by this package.
//
//go:generate mockgen -destination=./queries_client_api_test.go -package=godynamo . DynamoDBQueriesClientAPI
type DynamoDBQueriesClientAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type Queries struct {
	svc    DynamoDBQueriesClientAPI
	err    error
	active *ActiveTable
	opts   Options
}

func NewQueries(svc DynamoDBQueriesClientAPI, active *ActiveTable, opts Options) *Queries {
	if active == nil {
		active = new(ActiveTable)
	}
	return &Queries{svc: svc, active: active, opts: opts.withDefaults()}
}

// GetAllItems returns the items of a single Scan of table name (the active
// table when name is empty), limited to attrs when any are given. LastKey is
// set when the table holds more items than one Scan returns.
func (q *Queries) GetAllItems(ctx context.Context, name string, attrs ...string) (*ScanResults, error) {
	return goaws.Guard(ctx, q.opts.Logger, "godynamo.GetAllItems", func() (*ScanResults, error) {
		if q.err != nil {
			return nil, q.err
		}
		table, err := q.active.resolve(name)
		if err != nil {
			return nil, err
		}

		input := &dynamodb.ScanInput{TableName: pointy.String(table)}
		expr, err := projection(attrs)
		if err != nil {
			return nil, goaws.NewClientError(err)
		}
		if expr != nil {
			input.ExpressionAttributeNames = expr.Names()
			input.ProjectionExpression = expr.Projection()
		}

		result, err := q.svc.Scan(ctx, input)
		if err != nil {
			return nil, handleErr(fmt.Errorf("q.svc.Scan: %w", err))
		}

		items := make([]Item, 0, len(result.Items))
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
			return nil, goaws.NewInternalError(fmt.Errorf("attributevalue.UnmarshalListOfMaps: %w", err))
		}

		return &ScanResults{Items: items, LastKey: result.LastEvaluatedKey}, nil
	})
}

// GetItem reads the item with the given key from table name (the active
// table when name is empty). It returns a nil Item when no item has that key.
func (q *Queries) GetItem(ctx context.Context, key any, name string, attrs ...string) (Item, error) {
	return goaws.Guard(ctx, q.opts.Logger, "godynamo.GetItem", func() (Item, error) {
		if q.err != nil {
			return nil, q.err
		}
		table, err := q.active.resolve(name)
		if err != nil {
			return nil, err
		}

		av, err := attributevalue.MarshalMap(key)
		if err != nil {
			return nil, goaws.NewClientError(fmt.Errorf("attributevalue.MarshalMap: %w", err))
		}

		input := &dynamodb.GetItemInput{
			TableName: pointy.String(table),
			Key:       av,
		}
		expr, err := projection(attrs)
		if err != nil {
			return nil, goaws.NewClientError(err)
		}
		if expr != nil {
			input.ExpressionAttributeNames = expr.Names()
			input.ProjectionExpression = expr.Projection()
		}

		result, err := q.svc.GetItem(ctx, input)
		if err != nil {
			return nil, handleErr(fmt.Errorf("q.svc.GetItem: %w", err))
		}
		if len(result.Item) == 0 {
			return nil, nil
		}

		item := make(Item, len(result.Item))
		if err = attributevalue.UnmarshalMap(result.Item, &item); err != nil {
			return nil, goaws.NewInternalError(fmt.Errorf("attributevalue.UnmarshalMap: %w", err))
		}

		return item, nil
	})
}

// PutItems writes every record from source to table name (the active table
// when name is empty) in batches.
func (q *Queries) PutItems(ctx context.Context, source ItemSource, name string) (*BatchWriteResponse, error) {
	return goaws.Guard(ctx, q.opts.Logger, "godynamo.PutItems", func() (*BatchWriteResponse, error) {
		return q.writeItems(ctx, source, name, putRequest)
	})
}

// DeleteItems deletes the item of every key from source in table name (the
// active table when name is empty) in batches.
func (q *Queries) DeleteItems(ctx context.Context, source ItemSource, name string) (*BatchWriteResponse, error) {
	return goaws.Guard(ctx, q.opts.Logger, "godynamo.DeleteItems", func() (*BatchWriteResponse, error) {
		return q.writeItems(ctx, source, name, deleteRequest)
	})
}

func (q *Queries) writeItems(ctx context.Context, source ItemSource, name string, kind requestKind) (*BatchWriteResponse, error) {
	if q.err != nil {
		return nil, q.err
	}
	table, err := q.active.resolve(name)
	if err != nil {
		return nil, err
	}
	if source == nil {
		source = ItemList(nil)
	}

	items, err := source.Load(q.opts.FS)
	if err != nil {
		return nil, err
	}

	return q.batchWrite(ctx, table, kind, items)
}
