// gos3 contains common methods for interacting with AWS S3
package gos3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/adrg/xdg"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/uuid"
	"go.openly.dev/pointy"

	"github.com/ggarcia209/go-aws-wrappers/goaws"
)

// MaxDeleteObjects is the most keys S3 accepts in one DeleteObjects call.
const MaxDeleteObjects = 1000

// S3Logic defines common methods for managing buckets and objects
//
//go:generate mockgen -destination=../mocks/gos3mock/s3.go -package=gos3mock . S3Logic
type S3Logic interface {
	ActiveBucket() string
	CreateBucket(ctx context.Context, prefix, region string) (*CreateBucketResponse, error)
	ListBuckets(ctx context.Context) (*ListBucketsResponse, error)
	GetActiveBucket(ctx context.Context, name string) (*GetBucketResponse, error)
	ListObjects(ctx context.Context, name string) (*ListObjectsResponse, error)
	ValidateLocalPath(path string) *LocalFile
	UploadFile(ctx context.Context, bucket, path string) (*UploadFileResponse, error)
	UploadFiles(ctx context.Context, bucket, folder string) (*UploadFilesResponse, error)
	GetObject(ctx context.Context, req GetFileRequest) (*GetObjectResponse, error)
	HeadObject(ctx context.Context, req GetFileRequest) (*HeadObjectResponse, error)
	CheckIfObjectExists(ctx context.Context, req GetFileRequest) (*ObjectExistsResponse, error)
	DeleteFile(ctx context.Context, bucket, key string, versionId *string) error
	DeleteBucketContents(ctx context.Context, name string) (*DeleteContentsResponse, error)
	DeleteBucket(ctx context.Context, name string) error
}

// S3ClientAPI defines the interface for the AWS S3 client methods used by this package.
//
//go:generate mockgen -destination=./s3_client_test.go -package=gos3 . S3ClientAPI
type S3ClientAPI interface {
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	DeleteBucket(ctx context.Context, params *s3.DeleteBucketInput, optFns ...func(*s3.Options)) (*s3.DeleteBucketOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	ListObjectVersions(ctx context.Context, params *s3.ListObjectVersionsInput, optFns ...func(*s3.Options)) (*s3.ListObjectVersionsOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

type Options struct {
	Logger *slog.Logger
	// FS is the local filesystem uploads read from. Defaults to the host filesystem.
	FS billy.Filesystem
	// Root is the directory relative local paths resolve against and that
	// every uploaded path must lie within. Defaults to the user's home directory.
	Root string
	// Region is used by CreateBucket when no region is given. Defaults to the session's region.
	Region string
}

// S3 manages buckets and objects. The most recently created or selected
// bucket is the active bucket, used whenever an operation is called with an
// empty bucket name.
type S3 struct {
	svc    S3ClientAPI
	err    error
	fs     billy.Filesystem
	root   string
	region string
	logger *slog.Logger

	mu     sync.RWMutex
	bucket string
}

// NewS3 builds an S3 wrapper from sess. If sess holds a fault, every
// operation on the returned wrapper reports it.
func NewS3(sess *goaws.Session, opts Options) *S3 {
	if sess != nil {
		if opts.Logger == nil {
			opts.Logger = sess.Logger()
		}
		if opts.Region == "" {
			opts.Region = sess.Region()
		}
	}
	s := newS3(nil, opts)
	s.svc, s.err = goaws.CreateClient(sess, s3.NewFromConfig)
	return s
}

func newS3(svc S3ClientAPI, opts Options) *S3 {
	fs := opts.FS
	if fs == nil {
		fs = osfs.New("")
	}
	root := opts.Root
	if root == "" {
		root = xdg.Home
	}
	return &S3{
		svc:    svc,
		fs:     fs,
		root:   root,
		region: opts.Region,
		logger: goaws.LoggerOrDefault(opts.Logger),
	}
}

func (s *S3) ActiveBucket() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bucket
}

func (s *S3) setBucket(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bucket = name
}

// resolve returns name, or the active bucket when name is empty.
func (s *S3) resolve(name string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if name != "" {
		return name, nil
	}
	if active := s.ActiveBucket(); active != "" {
		return active, nil
	}
	return "", NewNoActiveBucketError()
}

// CreateBucketName returns prefix followed by a random UUID.
func CreateBucketName(prefix string) string {
	return prefix + uuid.NewString()
}

// CreateBucket creates a bucket named prefix plus a UUID in region (the
// wrapper's region when empty) and makes it the active bucket.
func (s *S3) CreateBucket(ctx context.Context, prefix, region string) (*CreateBucketResponse, error) {
	return goaws.Guard(ctx, s.logger, "gos3.CreateBucket", func() (*CreateBucketResponse, error) {
		if s.err != nil {
			return nil, s.err
		}
		if region == "" {
			region = s.region
		}
		name := CreateBucketName(prefix)

		input := &s3.CreateBucketInput{Bucket: pointy.String(name)}
		// us-east-1 rejects an explicit location constraint
		if region != "" && region != "us-east-1" {
			input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
				LocationConstraint: types.BucketLocationConstraint(region),
			}
		}

		out, err := s.svc.CreateBucket(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("s.svc.CreateBucket: %w", err)
		}

		s.setBucket(name)
		s.logger.InfoContext(ctx, "bucket created", slog.String("bucket", name), slog.String("region", region))

		return &CreateBucketResponse{
			Bucket:   name,
			Location: pointy.StringValue(out.Location, ""),
		}, nil
	})
}

// ListBuckets returns a single page of the account's buckets.
func (s *S3) ListBuckets(ctx context.Context) (*ListBucketsResponse, error) {
	return goaws.Guard(ctx, s.logger, "gos3.ListBuckets", func() (*ListBucketsResponse, error) {
		if s.err != nil {
			return nil, s.err
		}

		out, err := s.svc.ListBuckets(ctx, &s3.ListBucketsInput{})
		if err != nil {
			return nil, fmt.Errorf("s.svc.ListBuckets: %w", err)
		}

		resp := &ListBucketsResponse{Buckets: make([]BucketSummary, 0, len(out.Buckets))}
		for _, b := range out.Buckets {
			resp.Buckets = append(resp.Buckets, BucketSummary{
				Name:         pointy.StringValue(b.Name, ""),
				CreationDate: aws.ToTime(b.CreationDate),
			})
		}
		return resp, nil
	})
}

// GetActiveBucket checks that bucket name (the active bucket when empty)
// exists and is accessible, then makes it the active bucket.
func (s *S3) GetActiveBucket(ctx context.Context, name string) (*GetBucketResponse, error) {
	return goaws.Guard(ctx, s.logger, "gos3.GetActiveBucket", func() (*GetBucketResponse, error) {
		bucket, err := s.resolve(name)
		if err != nil {
			return nil, err
		}

		out, err := s.svc.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: pointy.String(bucket)})
		if err != nil {
			return nil, handleErr(fmt.Errorf("s.svc.HeadBucket: %w", err), bucket, "")
		}

		s.setBucket(bucket)

		return &GetBucketResponse{
			Bucket: bucket,
			Region: pointy.StringValue(out.BucketRegion, ""),
		}, nil
	})
}

// ListObjects returns a single page of the objects in bucket name (the
// active bucket when empty).
func (s *S3) ListObjects(ctx context.Context, name string) (*ListObjectsResponse, error) {
	return goaws.Guard(ctx, s.logger, "gos3.ListObjects", func() (*ListObjectsResponse, error) {
		bucket, err := s.resolve(name)
		if err != nil {
			return nil, err
		}

		out, err := s.svc.ListObjectsV2(ctx, &s3.ListObjectsV2Input{Bucket: pointy.String(bucket)})
		if err != nil {
			return nil, handleErr(fmt.Errorf("s.svc.ListObjectsV2: %w", err), bucket, "")
		}

		resp := &ListObjectsResponse{
			Bucket:                bucket,
			Objects:               make([]ObjectSummary, 0, len(out.Contents)),
			IsTruncated:           pointy.BoolValue(out.IsTruncated, false),
			NextContinuationToken: pointy.StringValue(out.NextContinuationToken, ""),
		}
		for _, o := range out.Contents {
			resp.Objects = append(resp.Objects, ObjectSummary{
				Key:          pointy.StringValue(o.Key, ""),
				Size:         pointy.Int64Value(o.Size, 0),
				ETag:         pointy.StringValue(o.ETag, ""),
				LastModified: aws.ToTime(o.LastModified),
			})
		}
		return resp, nil
	})
}

// UploadFile uploads the local file at path to bucket (the active bucket
// when empty). The object key is the path relative to the local root.
func (s *S3) UploadFile(ctx context.Context, bucket, path string) (*UploadFileResponse, error) {
	return goaws.Guard(ctx, s.logger, "gos3.UploadFile", func() (*UploadFileResponse, error) {
		b, err := s.resolve(bucket)
		if err != nil {
			return nil, err
		}
		return s.uploadFile(ctx, b, path)
	})
}

func (s *S3) uploadFile(ctx context.Context, bucket, path string) (*UploadFileResponse, error) {
	file := s.ValidateLocalPath(path)
	if file == nil {
		return nil, NewInvalidLocalPathError(path)
	}

	data, err := util.ReadFile(s.fs, file.Path)
	if err != nil {
		return nil, NewInvalidLocalPathError(path)
	}
	contentType := mimetype.Detect(data).String()

	out, err := s.svc.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      pointy.String(bucket),
		Key:         pointy.String(file.Key),
		Body:        bytes.NewReader(data),
		ContentType: pointy.String(contentType),
	})
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.PutObject: %w", err), bucket, "")
	}

	return &UploadFileResponse{
		Bucket:      bucket,
		Key:         file.Key,
		ContentType: contentType,
		VersionID:   pointy.StringValue(out.VersionId, ""),
		ETag:        pointy.StringValue(out.ETag, ""),
	}, nil
}

// UploadFiles uploads every regular file under folder to bucket (the active
// bucket when empty). A file that fails to upload is logged and reported in
// the response, and the walk continues.
func (s *S3) UploadFiles(ctx context.Context, bucket, folder string) (*UploadFilesResponse, error) {
	return goaws.Guard(ctx, s.logger, "gos3.UploadFiles", func() (*UploadFilesResponse, error) {
		b, err := s.resolve(bucket)
		if err != nil {
			return nil, err
		}
		dir := s.ValidateLocalPath(folder)
		if dir == nil {
			return nil, NewInvalidLocalPathError(folder)
		}

		resp := &UploadFilesResponse{
			Uploaded: []UploadFileResponse{},
			Failed:   []FailedUpload{},
		}
		fail := func(path string, err error) {
			ae := goaws.Classify(err)
			s.logger.ErrorContext(ctx, "upload failed",
				slog.String("path", path),
				slog.String("kind", string(ae.Kind())),
				slog.String("error", ae.Error()),
			)
			resp.Failed = append(resp.Failed, FailedUpload{Path: path, Kind: ae.Kind(), Error: ae.Error()})
		}

		walkErr := util.Walk(s.fs, dir.Path, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				fail(path, err)
				return nil
			}
			if !info.Mode().IsRegular() {
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := s.uploadFile(ctx, b, path)
			if err != nil {
				fail(path, err)
				return nil
			}
			resp.Uploaded = append(resp.Uploaded, *res)
			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("util.Walk: %w", walkErr)
		}

		return resp, nil
	})
}

// GetObject returns the S3 object at the given bucket/key as a byte slice.
func (s *S3) GetObject(ctx context.Context, req GetFileRequest) (*GetObjectResponse, error) {
	return goaws.Guard(ctx, s.logger, "gos3.GetObject", func() (*GetObjectResponse, error) {
		bucket, err := s.resolve(req.Bucket)
		if err != nil {
			return nil, err
		}

		input := &s3.GetObjectInput{
			Bucket:    pointy.String(bucket),
			Key:       pointy.String(req.Key),
			VersionId: req.VersionId,
		}
		if req.UseChecksum {
			input.ChecksumMode = types.ChecksumModeEnabled
		}

		obj, err := s.svc.GetObject(ctx, input)
		if err != nil {
			return nil, handleErr(fmt.Errorf("s.svc.GetObject: %w", err), bucket, req.Key)
		}
		defer obj.Body.Close()

		data, err := io.ReadAll(obj.Body)
		if err != nil {
			return nil, goaws.NewInternalError(fmt.Errorf("io.ReadAll: %w", err))
		}

		return &GetObjectResponse{
			File:        data,
			ContentType: pointy.StringValue(obj.ContentType, ""),
		}, nil
	})
}

func (s *S3) HeadObject(ctx context.Context, req GetFileRequest) (*HeadObjectResponse, error) {
	return goaws.Guard(ctx, s.logger, "gos3.HeadObject", func() (*HeadObjectResponse, error) {
		bucket, err := s.resolve(req.Bucket)
		if err != nil {
			return nil, err
		}
		return s.headObject(ctx, bucket, req)
	})
}

func (s *S3) headObject(ctx context.Context, bucket string, req GetFileRequest) (*HeadObjectResponse, error) {
	input := &s3.HeadObjectInput{
		Bucket:    pointy.String(bucket),
		Key:       pointy.String(req.Key),
		VersionId: req.VersionId,
	}
	if req.UseChecksum {
		input.ChecksumMode = types.ChecksumModeEnabled
	}

	obj, err := s.svc.HeadObject(ctx, input)
	if err != nil {
		return nil, handleErr(fmt.Errorf("s.svc.HeadObject: %w", err), bucket, req.Key)
	}

	resp := &HeadObjectResponse{
		Metadata:    obj.Metadata,
		ContentType: pointy.StringValue(obj.ContentType, ""),
	}
	if req.UseChecksum {
		resp.Sha256Checksum = pointy.StringValue(obj.ChecksumSHA256, "")
	}
	return resp, nil
}

// CheckIfObjectExists checks if a head object exists at bucket/key
func (s *S3) CheckIfObjectExists(ctx context.Context, req GetFileRequest) (*ObjectExistsResponse, error) {
	return goaws.Guard(ctx, s.logger, "gos3.CheckIfObjectExists", func() (*ObjectExistsResponse, error) {
		bucket, err := s.resolve(req.Bucket)
		if err != nil {
			return nil, err
		}

		if _, err := s.headObject(ctx, bucket, GetFileRequest{Key: req.Key, VersionId: req.VersionId}); err != nil {
			var missing *ItemNotFoundError
			if errors.As(err, &missing) {
				return &ObjectExistsResponse{Exists: false}, nil
			}
			return nil, err
		}

		return &ObjectExistsResponse{Exists: true}, nil
	})
}

// DeleteFile deletes the file at bucket/key. An empty bucket means the active bucket.
func (s *S3) DeleteFile(ctx context.Context, bucket, key string, versionId *string) error {
	_, err := goaws.Guard(ctx, s.logger, "gos3.DeleteFile", func() (struct{}, error) {
		b, err := s.resolve(bucket)
		if err != nil {
			return struct{}{}, err
		}

		if _, err := s.svc.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket:    pointy.String(b),
			Key:       pointy.String(key),
			VersionId: versionId,
		}); err != nil {
			return struct{}{}, handleErr(fmt.Errorf("s.svc.DeleteObject: %w", err), b, key)
		}
		return struct{}{}, nil
	})
	return err
}

// DeleteBucketContents deletes every object version and delete marker in
// bucket name (the active bucket when empty), MaxDeleteObjects per request.
func (s *S3) DeleteBucketContents(ctx context.Context, name string) (*DeleteContentsResponse, error) {
	return goaws.Guard(ctx, s.logger, "gos3.DeleteBucketContents", func() (*DeleteContentsResponse, error) {
		bucket, err := s.resolve(name)
		if err != nil {
			return nil, err
		}

		objects, err := s.listVersions(ctx, bucket)
		if err != nil {
			return nil, err
		}

		resp := &DeleteContentsResponse{Bucket: bucket, Errors: []DeleteObjectError{}}
		for _, batch := range goaws.Chunk(objects, MaxDeleteObjects) {
			out, err := s.svc.DeleteObjects(ctx, &s3.DeleteObjectsInput{
				Bucket: pointy.String(bucket),
				Delete: &types.Delete{
					Objects: batch,
					Quiet:   pointy.Bool(false),
				},
			})
			if err != nil {
				return nil, handleErr(fmt.Errorf("s.svc.DeleteObjects: %w", err), bucket, "")
			}

			resp.Deleted += len(out.Deleted)
			for _, e := range out.Errors {
				resp.Errors = append(resp.Errors, DeleteObjectError{
					Key:       pointy.StringValue(e.Key, ""),
					VersionId: pointy.StringValue(e.VersionId, ""),
					Code:      pointy.StringValue(e.Code, ""),
					Message:   pointy.StringValue(e.Message, ""),
				})
			}
		}

		return resp, nil
	})
}

// listVersions returns an identifier for every object version and delete
// marker in bucket, following the version markers until the listing ends.
func (s *S3) listVersions(ctx context.Context, bucket string) ([]types.ObjectIdentifier, error) {
	objects := make([]types.ObjectIdentifier, 0)
	input := &s3.ListObjectVersionsInput{Bucket: pointy.String(bucket)}

	for {
		out, err := s.svc.ListObjectVersions(ctx, input)
		if err != nil {
			return nil, handleErr(fmt.Errorf("s.svc.ListObjectVersions: %w", err), bucket, "")
		}

		for _, v := range out.Versions {
			objects = append(objects, types.ObjectIdentifier{Key: v.Key, VersionId: v.VersionId})
		}
		for _, m := range out.DeleteMarkers {
			objects = append(objects, types.ObjectIdentifier{Key: m.Key, VersionId: m.VersionId})
		}

		if !pointy.BoolValue(out.IsTruncated, false) {
			return objects, nil
		}
		input = &s3.ListObjectVersionsInput{
			Bucket:          pointy.String(bucket),
			KeyMarker:       out.NextKeyMarker,
			VersionIdMarker: out.NextVersionIdMarker,
		}
	}
}

// DeleteBucket deletes bucket name (the active bucket when empty). The
// bucket must be empty. The active bucket is left unchanged.
func (s *S3) DeleteBucket(ctx context.Context, name string) error {
	_, err := goaws.Guard(ctx, s.logger, "gos3.DeleteBucket", func() (struct{}, error) {
		bucket, err := s.resolve(name)
		if err != nil {
			return struct{}{}, err
		}

		if _, err := s.svc.DeleteBucket(ctx, &s3.DeleteBucketInput{Bucket: pointy.String(bucket)}); err != nil {
			return struct{}{}, handleErr(fmt.Errorf("s.svc.DeleteBucket: %w", err), bucket, "")
		}
		return struct{}{}, nil
	})
	return err
}
