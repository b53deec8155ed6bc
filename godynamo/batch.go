package godynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ggarcia209/go-aws-wrappers/goaws"
)

type requestKind int

const (
	putRequest requestKind = iota
	deleteRequest
)

func (k requestKind) writeRequest(av map[string]types.AttributeValue) types.WriteRequest {
	if k == deleteRequest {
		return types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: av}}
	}
	return types.WriteRequest{PutRequest: &types.PutRequest{Item: av}}
}

// batchWrite sends items to table as put or delete requests, MaxBatchWriteItems
// per BatchWriteItem call, in input order. Unprocessed requests are collected
// per call and returned without retrying. A failed call stops the remaining
// batches; batches already sent stay applied.
func (q *Queries) batchWrite(ctx context.Context, table string, kind requestKind, items []any) (*BatchWriteResponse, error) {
	requests := make([]types.WriteRequest, 0, len(items))
	for _, item := range items {
		av, err := attributevalue.MarshalMap(item)
		if err != nil {
			return nil, goaws.NewClientError(fmt.Errorf("attributevalue.MarshalMap: %w", err))
		}
		requests = append(requests, kind.writeRequest(av))
	}

	resp := &BatchWriteResponse{
		Table:            table,
		ItemCount:        len(items),
		UnprocessedItems: []map[string][]types.WriteRequest{},
	}

	for _, batch := range goaws.Chunk(requests, MaxBatchWriteItems) {
		result, err := q.svc.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems:                map[string][]types.WriteRequest{table: batch},
			ReturnItemCollectionMetrics: types.ReturnItemCollectionMetricsSize,
		})
		if err != nil {
			return nil, handleErr(fmt.Errorf("q.svc.BatchWriteItem: %w", err))
		}
		if len(result.UnprocessedItems) > 0 {
			resp.UnprocessedItems = append(resp.UnprocessedItems, result.UnprocessedItems)
		}
	}

	return resp, nil
}
