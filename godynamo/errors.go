package godynamo

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ggarcia209/go-aws-wrappers/goaws"
)

type NoActiveTableError struct {
	*goaws.ClientErr
}

func NewNoActiveTableError() *NoActiveTableError {
	return &NoActiveTableError{goaws.NewClientError(errors.New("no active table"))}
}

type InvalidSchemaError struct {
	*goaws.ClientErr
}

func NewInvalidSchemaError(schema []SchemaField) *InvalidSchemaError {
	return &InvalidSchemaError{goaws.NewClientError(fmt.Errorf("invalid schema: %+v", schema))}
}

// ItemSourceError is returned when an item or schema file cannot be read or decoded.
type ItemSourceError struct {
	*goaws.ClientErr
}

func NewItemSourceError(path string, err error) *ItemSourceError {
	return &ItemSourceError{goaws.NewClientError(fmt.Errorf("item source %s: %w", path, err))}
}

type RateLimitExceededError struct {
	*goaws.RetryableClientError
}

func NewRateLimitExceededError() *RateLimitExceededError {
	return &RateLimitExceededError{goaws.NewRetryableClientError(fmt.Errorf("rate limit exceeded"))}
}

type ResourceNotFoundError struct {
	*goaws.GenericError
}

func NewResourceNotFoundError(resource string) *ResourceNotFoundError {
	return &ResourceNotFoundError{goaws.NewKindError(goaws.KindNotFound, fmt.Errorf("resource not found: %s", resource))}
}

type ResourceInUseError struct {
	*goaws.ClientErr
}

func NewResourceInUseError(resource string) *ResourceInUseError {
	return &ResourceInUseError{goaws.NewClientError(fmt.Errorf("resource in use: %s", resource))}
}

type CollectionSizeExceededError struct {
	*goaws.ClientErr
}

func NewCollectionSizeExceededError() *CollectionSizeExceededError {
	return &CollectionSizeExceededError{goaws.NewClientError(errors.New("item collection size limit exceeded"))}
}

// handleErr maps DynamoDB exceptions to the package's typed errors. Anything
// else is returned unchanged for classification.
func handleErr(err error) error {
	if err == nil {
		return nil
	}
	var (
		provisionedThroughputExceeded   *types.ProvisionedThroughputExceededException
		requestLimitExceeded            *types.RequestLimitExceeded
		resourceNotFound                *types.ResourceNotFoundException
		resourceInUse                   *types.ResourceInUseException
		itemCollectionSizeLimitExceeded *types.ItemCollectionSizeLimitExceededException
	)
	switch {
	case errors.As(err, &provisionedThroughputExceeded), errors.As(err, &requestLimitExceeded):
		return NewRateLimitExceededError()
	case errors.As(err, &resourceNotFound):
		return NewResourceNotFoundError(resourceNotFound.ErrorMessage())
	case errors.As(err, &resourceInUse):
		return NewResourceInUseError(resourceInUse.ErrorMessage())
	case errors.As(err, &itemCollectionSizeLimitExceeded):
		return NewCollectionSizeExceededError()
	default:
		return err
	}
}
