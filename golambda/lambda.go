// golambda contains common methods for deploying and invoking AWS Lambda functions.
package golambda

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"go.openly.dev/pointy"

	"github.com/ggarcia209/go-aws-wrappers/goaws"
)

//go:generate mockgen -destination=../mocks/golambdamock/lambda.go -package=golambdamock . LambdaLogic
type LambdaLogic interface {
	SetFunctionConfig(cfg FunctionConfig)
	FunctionConfig() FunctionConfig
	UseFunction(name string)
	ActiveFunction() string
	PackageFiles(paths []string) ([]byte, error)
	CreateFunction(ctx context.Context, name, description string, archive []byte) (*CreateFunctionResponse, error)
	ListFunctions(ctx context.Context, req ListFunctionsRequest) (*ListFunctionsResponse, error)
	UpdateFunction(ctx context.Context, archive []byte, name string) (*UpdateFunctionResponse, error)
	Invoke(ctx context.Context, payload []byte, name string) (*InvokeResponse, error)
	DeleteFunction(ctx context.Context, name string) error
}

// LambdaClientAPI defines the interface for the AWS Lambda client methods used by this package.
//
//go:generate mockgen -destination=./mock_lambda_client_api_test.go -package=golambda . LambdaClientAPI
type LambdaClientAPI interface {
	CreateFunction(ctx context.Context, params *lambda.CreateFunctionInput, optFns ...func(*lambda.Options)) (*lambda.CreateFunctionOutput, error)
	ListFunctions(ctx context.Context, params *lambda.ListFunctionsInput, optFns ...func(*lambda.Options)) (*lambda.ListFunctionsOutput, error)
	UpdateFunctionCode(ctx context.Context, params *lambda.UpdateFunctionCodeInput, optFns ...func(*lambda.Options)) (*lambda.UpdateFunctionCodeOutput, error)
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
	DeleteFunction(ctx context.Context, params *lambda.DeleteFunctionInput, optFns ...func(*lambda.Options)) (*lambda.DeleteFunctionOutput, error)
}

type Options struct {
	Logger *slog.Logger
	// FS is the filesystem PackageFiles reads from. Defaults to the host filesystem.
	FS billy.Filesystem
}

// Lambda deploys and invokes functions. The most recently created or selected
// function is the active function, used whenever an operation is called with
// an empty name.
type Lambda struct {
	svc    LambdaClientAPI
	err    error
	fs     billy.Filesystem
	logger *slog.Logger

	mu       sync.RWMutex
	function string
	config   FunctionConfig
}

// NewLambda builds a Lambda wrapper from sess. If sess holds a fault, every
// operation on the returned wrapper reports it.
func NewLambda(sess *goaws.Session, opts Options) *Lambda {
	l := newLambda(nil, opts)
	l.svc, l.err = goaws.CreateClient(sess, lambda.NewFromConfig)
	if opts.Logger == nil && sess != nil {
		l.logger = sess.Logger()
	}
	return l
}

func newLambda(svc LambdaClientAPI, opts Options) *Lambda {
	fs := opts.FS
	if fs == nil {
		fs = osfs.New("")
	}
	return &Lambda{
		svc:    svc,
		fs:     fs,
		logger: goaws.LoggerOrDefault(opts.Logger),
	}
}

func (l *Lambda) SetFunctionConfig(cfg FunctionConfig) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.config = cfg
}

func (l *Lambda) FunctionConfig() FunctionConfig {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.config
}

// UseFunction makes name the active function without calling the service.
func (l *Lambda) UseFunction(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.function = name
}

func (l *Lambda) ActiveFunction() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.function
}

func (l *Lambda) resolve(name string) (string, error) {
	if name != "" {
		return name, nil
	}
	if active := l.ActiveFunction(); active != "" {
		return active, nil
	}
	return "", NewNoActiveFunctionError()
}

// PackageFiles builds an in-memory zip archive of paths, each stored at its
// base name, for use as a function's deployment package.
func (l *Lambda) PackageFiles(paths []string) ([]byte, error) {
	return goaws.Guard(context.Background(), l.logger, "golambda.PackageFiles", func() ([]byte, error) {
		return zipFiles(l.fs, paths)
	})
}

// CreateFunction creates a function from archive using the configured
// runtime, role and handler, then makes it the active function.
func (l *Lambda) CreateFunction(ctx context.Context, name, description string, archive []byte) (*CreateFunctionResponse, error) {
	return goaws.Guard(ctx, l.logger, "golambda.CreateFunction", func() (*CreateFunctionResponse, error) {
		if l.err != nil {
			return nil, l.err
		}
		cfg := l.FunctionConfig()
		if !cfg.Complete() {
			return nil, NewFunctionConfigError(cfg)
		}

		out, err := l.svc.CreateFunction(ctx, &lambda.CreateFunctionInput{
			FunctionName: pointy.String(name),
			Runtime:      cfg.Runtime,
			Role:         pointy.String(cfg.Role),
			Handler:      pointy.String(cfg.Handler),
			Description:  pointy.String(description),
			Code:         &types.FunctionCode{ZipFile: archive},
		})
		if err != nil {
			return nil, fmt.Errorf("l.svc.CreateFunction: %w", err)
		}

		l.UseFunction(name)
		l.logger.InfoContext(ctx, "function created", slog.String("function", name))

		return &CreateFunctionResponse{
			FunctionName: pointy.StringValue(out.FunctionName, name),
			FunctionArn:  pointy.StringValue(out.FunctionArn, ""),
			Version:      pointy.StringValue(out.Version, ""),
			State:        out.State,
			CodeSize:     out.CodeSize,
		}, nil
	})
}

// ListFunctions returns a single page of functions.
func (l *Lambda) ListFunctions(ctx context.Context, req ListFunctionsRequest) (*ListFunctionsResponse, error) {
	return goaws.Guard(ctx, l.logger, "golambda.ListFunctions", func() (*ListFunctionsResponse, error) {
		if l.err != nil {
			return nil, l.err
		}

		out, err := l.svc.ListFunctions(ctx, &lambda.ListFunctionsInput{
			Marker:   req.Marker,
			MaxItems: req.MaxItems,
		})
		if err != nil {
			return nil, fmt.Errorf("l.svc.ListFunctions: %w", err)
		}

		resp := &ListFunctionsResponse{
			Functions:  make([]FunctionSummary, 0, len(out.Functions)),
			NextMarker: pointy.StringValue(out.NextMarker, ""),
		}
		for _, fn := range out.Functions {
			resp.Functions = append(resp.Functions, FunctionSummary{
				FunctionName: pointy.StringValue(fn.FunctionName, ""),
				FunctionArn:  pointy.StringValue(fn.FunctionArn, ""),
				Runtime:      fn.Runtime,
				Handler:      pointy.StringValue(fn.Handler, ""),
				Description:  pointy.StringValue(fn.Description, ""),
				LastModified: pointy.StringValue(fn.LastModified, ""),
			})
		}

		return resp, nil
	})
}

// UpdateFunction replaces the code of function name (the active function
// when name is empty) with archive.
func (l *Lambda) UpdateFunction(ctx context.Context, archive []byte, name string) (*UpdateFunctionResponse, error) {
	return goaws.Guard(ctx, l.logger, "golambda.UpdateFunction", func() (*UpdateFunctionResponse, error) {
		if l.err != nil {
			return nil, l.err
		}
		fn, err := l.resolve(name)
		if err != nil {
			return nil, err
		}

		out, err := l.svc.UpdateFunctionCode(ctx, &lambda.UpdateFunctionCodeInput{
			FunctionName: pointy.String(fn),
			ZipFile:      archive,
		})
		if err != nil {
			return nil, fmt.Errorf("l.svc.UpdateFunctionCode: %w", err)
		}

		return &UpdateFunctionResponse{
			FunctionName:     pointy.StringValue(out.FunctionName, fn),
			CodeSha256:       pointy.StringValue(out.CodeSha256, ""),
			Version:          pointy.StringValue(out.Version, ""),
			LastUpdateStatus: out.LastUpdateStatus,
		}, nil
	})
}

// Invoke runs function name (the active function when name is empty)
// synchronously with payload.
func (l *Lambda) Invoke(ctx context.Context, payload []byte, name string) (*InvokeResponse, error) {
	return goaws.Guard(ctx, l.logger, "golambda.Invoke", func() (*InvokeResponse, error) {
		if l.err != nil {
			return nil, l.err
		}
		fn, err := l.resolve(name)
		if err != nil {
			return nil, err
		}

		out, err := l.svc.Invoke(ctx, &lambda.InvokeInput{
			FunctionName: pointy.String(fn),
			Payload:      payload,
		})
		if err != nil {
			return nil, fmt.Errorf("l.svc.Invoke: %w", err)
		}

		return &InvokeResponse{
			StatusCode:      out.StatusCode,
			FunctionError:   pointy.StringValue(out.FunctionError, ""),
			Payload:         out.Payload,
			ExecutedVersion: pointy.StringValue(out.ExecutedVersion, ""),
			LogResult:       pointy.StringValue(out.LogResult, ""),
		}, nil
	})
}

// DeleteFunction deletes function name (the active function when name is
// empty). The active function is left unchanged.
func (l *Lambda) DeleteFunction(ctx context.Context, name string) error {
	_, err := goaws.Guard(ctx, l.logger, "golambda.DeleteFunction", func() (struct{}, error) {
		if l.err != nil {
			return struct{}{}, l.err
		}
		fn, err := l.resolve(name)
		if err != nil {
			return struct{}{}, err
		}

		if _, err := l.svc.DeleteFunction(ctx, &lambda.DeleteFunctionInput{
			FunctionName: pointy.String(fn),
		}); err != nil {
			return struct{}{}, fmt.Errorf("l.svc.DeleteFunction: %w", err)
		}
		return struct{}{}, nil
	})
	return err
}
