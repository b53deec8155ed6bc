package gos3

import (
	"time"

	"github.com/ggarcia209/go-aws-wrappers/goaws"
)

// LocalFile is a validated local path and the object key it uploads to.
type LocalFile struct {
	Path string `json:"path"`
	Key  string `json:"key"`
}

type GetFileRequest struct {
	Bucket      string  `json:"bucket"`
	Key         string  `json:"key"`
	VersionId   *string `json:"version_id,omitempty"`
	UseChecksum bool    `json:"use_checksum"`
}

type GetObjectResponse struct {
	File        []byte `json:"file"`
	ContentType string `json:"content_type,omitempty"`
}

type ObjectExistsResponse struct {
	Exists bool `json:"exists"`
}

type HeadObjectResponse struct {
	ContentType    string            `json:"content_type"`
	Sha256Checksum string            `json:"sha256_checksum"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

type CreateBucketResponse struct {
	Bucket   string `json:"bucket"`
	Location string `json:"location"`
}

type BucketSummary struct {
	Name         string    `json:"name"`
	CreationDate time.Time `json:"creation_date"`
}

type ListBucketsResponse struct {
	Buckets []BucketSummary `json:"buckets"`
}

type GetBucketResponse struct {
	Bucket string `json:"bucket"`
	Region string `json:"region,omitempty"`
}

type ObjectSummary struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	ETag         string    `json:"etag"`
	LastModified time.Time `json:"last_modified"`
}

type ListObjectsResponse struct {
	Bucket                string          `json:"bucket"`
	Objects               []ObjectSummary `json:"objects"`
	IsTruncated           bool            `json:"is_truncated"`
	NextContinuationToken string          `json:"next_continuation_token,omitempty"`
}

// UploadFileResponse contains the data returned by the S3 PutObject operation.
type UploadFileResponse struct {
	Bucket      string `json:"bucket"`
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	VersionID   string `json:"version_id,omitempty"`
	ETag        string `json:"etag,omitempty"`
}

type FailedUpload struct {
	Path  string     `json:"path"`
	Kind  goaws.Kind `json:"kind"`
	Error string     `json:"error"`
}

type UploadFilesResponse struct {
	Uploaded []UploadFileResponse `json:"uploaded"`
	Failed   []FailedUpload       `json:"failed"`
}

type DeleteObjectError struct {
	Key       string `json:"key"`
	VersionId string `json:"version_id,omitempty"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

type DeleteContentsResponse struct {
	Bucket  string              `json:"bucket"`
	Deleted int                 `json:"deleted"`
	Errors  []DeleteObjectError `json:"errors"`
}
