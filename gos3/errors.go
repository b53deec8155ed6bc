package gos3

import (
	"errors"
	"fmt"
	"net/http"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/ggarcia209/go-aws-wrappers/goaws"
)

type ItemNotFoundError struct {
	*goaws.GenericError
}

func NewItemNotFoundError(item string) error {
	return &ItemNotFoundError{
		goaws.NewKindError(goaws.KindNotFound, fmt.Errorf("item not found: %s", item)),
	}
}

type BucketNotFoundError struct {
	*goaws.GenericError
}

func NewBucketNotFoundError(bucket string) error {
	return &BucketNotFoundError{
		goaws.NewKindError(goaws.KindNotFound, fmt.Errorf("bucket not found: %s", bucket)),
	}
}

type NoActiveBucketError struct {
	*goaws.ClientErr
}

func NewNoActiveBucketError() error {
	return &NoActiveBucketError{
		goaws.NewClientError(errors.New("no active bucket")),
	}
}

// InvalidLocalPathError is returned when a local path is outside the local
// root or does not exist.
type InvalidLocalPathError struct {
	*goaws.ClientErr
}

func NewInvalidLocalPathError(path string) error {
	return &InvalidLocalPathError{
		goaws.NewClientError(fmt.Errorf("invalid local path: %s", path)),
	}
}

// notFound reports whether err means the requested bucket or object does not exist.
func notFound(err error) bool {
	var (
		noSuchKey    *types.NoSuchKey
		noSuchBucket *types.NoSuchBucket
		nf           *types.NotFound
		re           *awshttp.ResponseError
	)
	switch {
	case errors.As(err, &noSuchKey), errors.As(err, &noSuchBucket), errors.As(err, &nf):
		return true
	case errors.As(err, &re):
		return re.ResponseError != nil && re.Response != nil && re.Response.Response != nil &&
			re.HTTPStatusCode() == http.StatusNotFound
	default:
		return false
	}
}

// handleErr maps not-found responses for an object (key != "") or a bucket to
// the package's typed errors. Anything else is returned unchanged for classification.
func handleErr(err error, bucket, key string) error {
	if !notFound(err) {
		return err
	}
	var noSuchBucket *types.NoSuchBucket
	if key == "" || errors.As(err, &noSuchBucket) {
		return NewBucketNotFoundError(bucket)
	}
	return NewItemNotFoundError(key)
}
