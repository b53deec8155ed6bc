package godynamo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.openly.dev/pointy"

	"github.com/ggarcia209/go-aws-wrappers/goaws"
)

// TablesLogic defines common methods interacting with dynamo db tables
//
//go:generate mockgen -destination=../mocks/godynamomock/tables.go -package=godynamomock . TablesLogic
type TablesLogic interface {
	ActiveTable() string
	ActiveFields() []string
	CreateTable(ctx context.Context, name string, schema []SchemaField) (*CreateTableResponse, error)
	ListTables(ctx context.Context, params ListTableParams) (*ListTablesResponse, error)
	GetTable(ctx context.Context, name string) (*GetTableResponse, error)
	DeleteTable(ctx context.Context, name string) error
}

// DynamoDBTablesClientAPI defines the interface for the AWS DynamoDB client methods used by this package.
//
//go:generate mockgen -destination=./tables_client_api_test.go -package=godynamo . DynamoDBTablesClientAPI
type DynamoDBTablesClientAPI interface {
	ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	DeleteTable(ctx context.Context, params *dynamodb.DeleteTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteTableOutput, error)
}

type Tables struct {
	svc    DynamoDBTablesClientAPI
	err    error
	active *ActiveTable
	opts   Options
}

func NewTables(svc DynamoDBTablesClientAPI, active *ActiveTable, opts Options) *Tables {
	if active == nil {
		active = new(ActiveTable)
	}
	return &Tables{svc: svc, active: active, opts: opts.withDefaults()}
}

func (t *Tables) ActiveTable() string {
	return t.active.Name()
}

func (t *Tables) ActiveFields() []string {
	return t.active.Fields()
}

// ValidateSchema reports whether every field has a name, key type and type.
func ValidateSchema(schema []SchemaField) bool {
	for _, f := range schema {
		if f.Name == "" || f.KeyType == "" || f.Type == "" {
			return false
		}
	}
	return true
}

// CreateTable creates a table keyed by schema, or by DefaultSchema when schema
// is empty, and blocks until it is active. The new table becomes the active table.
func (t *Tables) CreateTable(ctx context.Context, name string, schema []SchemaField) (*CreateTableResponse, error) {
	return goaws.Guard(ctx, t.opts.Logger, "godynamo.CreateTable", func() (*CreateTableResponse, error) {
		if t.err != nil {
			return nil, t.err
		}
		if len(schema) == 0 {
			schema = DefaultSchema
		}
		if !ValidateSchema(schema) {
			return nil, NewInvalidSchemaError(schema)
		}

		input := &dynamodb.CreateTableInput{
			TableName:            pointy.String(name),
			AttributeDefinitions: make([]types.AttributeDefinition, 0, len(schema)),
			KeySchema:            make([]types.KeySchemaElement, 0, len(schema)),
		}
		for _, f := range schema {
			input.AttributeDefinitions = append(input.AttributeDefinitions, types.AttributeDefinition{
				AttributeName: pointy.String(f.Name),
				AttributeType: types.ScalarAttributeType(f.Type),
			})
			input.KeySchema = append(input.KeySchema, types.KeySchemaElement{
				AttributeName: pointy.String(f.Name),
				KeyType:       types.KeyType(f.KeyType),
			})
		}

		rcu, wcu := *t.opts.ReadCapacityUnits, *t.opts.WriteCapacityUnits
		if rcu == 0 && wcu == 0 {
			input.BillingMode = types.BillingModePayPerRequest
		} else {
			input.BillingMode = types.BillingModeProvisioned
			input.ProvisionedThroughput = &types.ProvisionedThroughput{
				ReadCapacityUnits:  pointy.Int64(rcu),
				WriteCapacityUnits: pointy.Int64(wcu),
			}
		}

		if _, err := t.svc.CreateTable(ctx, input); err != nil {
			return nil, handleErr(fmt.Errorf("t.svc.CreateTable: %w", err))
		}

		waiter := dynamodb.NewTableExistsWaiter(t.svc)
		out, err := waiter.WaitForOutput(ctx, &dynamodb.DescribeTableInput{TableName: pointy.String(name)}, t.opts.WaitTimeout)
		if err != nil {
			return nil, handleErr(fmt.Errorf("waiter.WaitForOutput: %w", err))
		}

		fields := attributeNames(out.Table)
		t.active.set(name, fields)
		t.opts.Logger.InfoContext(ctx, "table created", slog.String("table", name))

		return &CreateTableResponse{Table: name, Fields: fields}, nil
	})
}

// ListTables returns a single page of table names.
func (t *Tables) ListTables(ctx context.Context, params ListTableParams) (*ListTablesResponse, error) {
	return goaws.Guard(ctx, t.opts.Logger, "godynamo.ListTables", func() (*ListTablesResponse, error) {
		if t.err != nil {
			return nil, t.err
		}

		result, err := t.svc.ListTables(ctx, &dynamodb.ListTablesInput{
			ExclusiveStartTableName: params.StartTable,
			Limit:                   params.Limit,
		})
		if err != nil {
			return nil, handleErr(fmt.Errorf("t.svc.ListTables: %w", err))
		}

		return &ListTablesResponse{
			TableNames:             append([]string{}, result.TableNames...),
			LastEvaluatedTableName: pointy.StringValue(result.LastEvaluatedTableName, ""),
		}, nil
	})
}

// GetTable describes table name and makes it the active table.
func (t *Tables) GetTable(ctx context.Context, name string) (*GetTableResponse, error) {
	return goaws.Guard(ctx, t.opts.Logger, "godynamo.GetTable", func() (*GetTableResponse, error) {
		if t.err != nil {
			return nil, t.err
		}
		table, err := t.active.resolve(name)
		if err != nil {
			return nil, err
		}

		out, err := t.svc.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: pointy.String(table)})
		if err != nil {
			return nil, handleErr(fmt.Errorf("t.svc.DescribeTable: %w", err))
		}

		fields := attributeNames(out.Table)
		t.active.set(table, fields)

		resp := &GetTableResponse{Table: table, Fields: fields, KeySchema: keySchema(out.Table)}
		if out.Table != nil {
			resp.Status = out.Table.TableStatus
			resp.ItemCount = pointy.Int64Value(out.Table.ItemCount, 0)
		}
		return resp, nil
	})
}

// DeleteTable deletes table name (the active table when name is empty).
// The active table is left unchanged.
func (t *Tables) DeleteTable(ctx context.Context, name string) error {
	_, err := goaws.Guard(ctx, t.opts.Logger, "godynamo.DeleteTable", func() (struct{}, error) {
		if t.err != nil {
			return struct{}{}, t.err
		}
		table, err := t.active.resolve(name)
		if err != nil {
			return struct{}{}, err
		}

		if _, err := t.svc.DeleteTable(ctx, &dynamodb.DeleteTableInput{TableName: pointy.String(table)}); err != nil {
			return struct{}{}, handleErr(fmt.Errorf("t.svc.DeleteTable: %w", err))
		}
		return struct{}{}, nil
	})
	return err
}

func attributeNames(td *types.TableDescription) []string {
	if td == nil {
		return []string{}
	}
	names := make([]string, 0, len(td.AttributeDefinitions))
	for _, ad := range td.AttributeDefinitions {
		names = append(names, pointy.StringValue(ad.AttributeName, ""))
	}
	return names
}

func keySchema(td *types.TableDescription) []SchemaField {
	if td == nil {
		return []SchemaField{}
	}
	attrTypes := make(map[string]string, len(td.AttributeDefinitions))
	for _, ad := range td.AttributeDefinitions {
		attrTypes[pointy.StringValue(ad.AttributeName, "")] = string(ad.AttributeType)
	}
	schema := make([]SchemaField, 0, len(td.KeySchema))
	for _, ks := range td.KeySchema {
		name := pointy.StringValue(ks.AttributeName, "")
		schema = append(schema, SchemaField{Name: name, KeyType: string(ks.KeyType), Type: attrTypes[name]})
	}
	return schema
}
