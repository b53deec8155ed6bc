package godynamo

import "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

// SchemaField describes one key attribute of a table: its name, key type
// (HASH or RANGE) and scalar type (S, N or B).
type SchemaField struct {
	Name    string `json:"name" yaml:"name"`
	KeyType string `json:"key_type" yaml:"key_type"`
	Type    string `json:"type" yaml:"type"`
}

// DefaultSchema is used by CreateTable when no schema is given.
var DefaultSchema = []SchemaField{
	{Name: "ID", KeyType: string(types.KeyTypeHash), Type: string(types.ScalarAttributeTypeN)},
}

// Item is a single table record as read back from DynamoDB.
type Item = map[string]any

type CreateTableResponse struct {
	Table  string   `json:"table"`
	Fields []string `json:"fields"`
}

type ListTableParams struct {
	StartTable *string `json:"start_table"`
	Limit      *int32  `json:"limit"`
}

type ListTablesResponse struct {
	TableNames             []string `json:"table_names"`
	LastEvaluatedTableName string   `json:"last_evaluated_table_name,omitempty"`
}

type GetTableResponse struct {
	Table     string            `json:"table"`
	Status    types.TableStatus `json:"status"`
	ItemCount int64             `json:"item_count"`
	Fields    []string          `json:"fields"`
	KeySchema []SchemaField     `json:"key_schema"`
}

type ScanResults struct {
	Items   []Item                          `json:"items"`
	LastKey map[string]types.AttributeValue `json:"last_key,omitempty"`
}

// BatchWriteResponse reports a batched put or delete. UnprocessedItems holds
// one entry per BatchWriteItem call that left requests unprocessed, exactly as
// the service returned them.
type BatchWriteResponse struct {
	Table            string                            `json:"table"`
	ItemCount        int                               `json:"item_count"`
	UnprocessedItems []map[string][]types.WriteRequest `json:"unprocessed_items"`
}
