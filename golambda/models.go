package golambda

import "github.com/aws/aws-sdk-go-v2/service/lambda/types"

// FunctionConfig holds the settings applied to every function created by a
// Lambda wrapper. Handler is passed to the service verbatim.
type FunctionConfig struct {
	Runtime types.Runtime `json:"runtime" yaml:"runtime"`
	Role    string        `json:"role" yaml:"role"`
	Handler string        `json:"handler" yaml:"handler"`
}

// Complete reports whether every field is set.
func (c FunctionConfig) Complete() bool {
	return c.Runtime != "" && c.Role != "" && c.Handler != ""
}

type CreateFunctionResponse struct {
	FunctionName string      `json:"function_name"`
	FunctionArn  string      `json:"function_arn"`
	Version      string      `json:"version"`
	State        types.State `json:"state"`
	CodeSize     int64       `json:"code_size"`
}

type ListFunctionsRequest struct {
	Marker   *string `json:"marker,omitempty"`
	MaxItems *int32  `json:"max_items,omitempty"`
}

type FunctionSummary struct {
	FunctionName string        `json:"function_name"`
	FunctionArn  string        `json:"function_arn"`
	Runtime      types.Runtime `json:"runtime"`
	Handler      string        `json:"handler"`
	Description  string        `json:"description"`
	LastModified string        `json:"last_modified"`
}

type ListFunctionsResponse struct {
	Functions  []FunctionSummary `json:"functions"`
	NextMarker string            `json:"next_marker,omitempty"`
}

type UpdateFunctionResponse struct {
	FunctionName     string                 `json:"function_name"`
	CodeSha256       string                 `json:"code_sha256"`
	Version          string                 `json:"version"`
	LastUpdateStatus types.LastUpdateStatus `json:"last_update_status"`
}

// InvokeResponse carries the invocation result as the service returned it.
// An error raised by the function itself is reported in FunctionError and
// is not converted into a Go error.
type InvokeResponse struct {
	StatusCode      int32  `json:"status_code"`
	FunctionError   string `json:"function_error,omitempty"`
	Payload         []byte `json:"payload,omitempty"`
	ExecutedVersion string `json:"executed_version,omitempty"`
	LogResult       string `json:"log_result,omitempty"`
}
