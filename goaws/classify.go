package goaws

import (
	"errors"
	"net/http"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
)

var codeKinds = map[string]Kind{
	"ResourceNotFoundException": KindNotFound,
	"TableNotFoundException":    KindNotFound,
	"NoSuchBucket":              KindNotFound,
	"NoSuchKey":                 KindNotFound,
	"NoSuchVersion":             KindNotFound,
	"NotFound":                  KindNotFound,

	"AccessDenied":                KindAccessDenied,
	"AccessDeniedException":       KindAccessDenied,
	"UnauthorizedOperation":       KindAccessDenied,
	"UnrecognizedClientException": KindAccessDenied,
	"InvalidClientTokenId":        KindAccessDenied,
	"ExpiredToken":                KindAccessDenied,
	"ExpiredTokenException":       KindAccessDenied,
	"Forbidden":                   KindAccessDenied,

	"ThrottlingException":                    KindThrottled,
	"Throttling":                             KindThrottled,
	"ProvisionedThroughputExceededException": KindThrottled,
	"RequestLimitExceeded":                   KindThrottled,
	"TooManyRequestsException":               KindThrottled,
	"SlowDown":                               KindThrottled,

	"ValidationException":            KindParamValidation,
	"InvalidParameterValueException": KindParamValidation,
	"InvalidParameterException":      KindParamValidation,
	"InvalidArgument":                KindParamValidation,
}

// Classify converts any error into an AwsError. Errors that already
// implement AwsError are returned as is; wrapped AwsErrors keep their kind
// and the full message chain.
func Classify(err error) AwsError {
	if err == nil {
		return nil
	}

	if ae, ok := err.(AwsError); ok {
		return ae
	}
	var ae AwsError
	if errors.As(err, &ae) {
		return NewKindError(ae.Kind(), err)
	}

	var invalidParams *smithy.InvalidParamsError
	var paramRequired *smithy.ParamRequiredError
	if errors.As(err, &invalidParams) || errors.As(err, &paramRequired) {
		return NewKindError(KindParamValidation, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if kind, ok := codeKinds[apiErr.ErrorCode()]; ok {
			return NewKindError(kind, err)
		}
	}

	var re *awshttp.ResponseError
	if errors.As(err, &re) && re.ResponseError != nil && re.Response != nil && re.Response.Response != nil {
		switch re.HTTPStatusCode() {
		case http.StatusUnauthorized, http.StatusForbidden:
			return NewKindError(KindAccessDenied, err)
		case http.StatusNotFound:
			return NewKindError(KindNotFound, err)
		case http.StatusTooManyRequests:
			return NewKindError(KindThrottled, err)
		default:
			return NewKindError(KindService, err)
		}
	}

	var opErr *smithy.OperationError
	if apiErr != nil || errors.As(err, &opErr) {
		return NewKindError(KindService, err)
	}

	return NewKindError(KindInternal, err)
}

// KindOf returns the kind of err, or "" for a nil error.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	return Classify(err).Kind()
}
