package goaws

import "encoding/json"

// Kind identifies the category of a failed operation.
type Kind string

const (
	KindInvalidInput    Kind = "INVALID_INPUT"
	KindParamValidation Kind = "PARAM_VALIDATION"
	KindNotFound        Kind = "NOT_FOUND"
	KindAccessDenied    Kind = "ACCESS_DENIED"
	KindThrottled       Kind = "THROTTLED"
	KindService         Kind = "SERVICE_ERROR"
	KindSession         Kind = "SESSION_UNAVAILABLE"
	KindInternal        Kind = "INTERNAL_ERROR"
)

// AwsError is a generic interface for implementing
// error handling for each service.
type AwsError interface {
	Error() string
	Retryable() bool
	ClientError() bool
	Kind() Kind
}

type GenericError struct {
	msg       string
	retryable bool
	clientErr bool
	kind      Kind
	cause     error
}

func (e *GenericError) Error() string {
	return e.msg
}

func (e *GenericError) Retryable() bool {
	return e.retryable
}

func (e *GenericError) ClientError() bool {
	return e.clientErr
}

func (e *GenericError) Kind() Kind {
	return e.kind
}

func (e *GenericError) Unwrap() error {
	return e.cause
}

func NewGenericError(err error, retryable bool, clientErr bool) *GenericError {
	if err == nil {
		return nil
	}
	kind := KindInternal
	if clientErr {
		kind = KindInvalidInput
	}
	return &GenericError{
		msg:       err.Error(),
		retryable: retryable,
		clientErr: clientErr,
		kind:      kind,
		cause:     err,
	}
}

// NewKindError returns a GenericError of the given kind. Retryable and client
// flags are derived from the kind.
func NewKindError(kind Kind, err error) *GenericError {
	if err == nil {
		return nil
	}
	ge := &GenericError{msg: err.Error(), kind: kind, cause: err}
	switch kind {
	case KindInvalidInput, KindParamValidation, KindNotFound, KindAccessDenied:
		ge.clientErr = true
	case KindThrottled:
		ge.clientErr = true
		ge.retryable = true
	case KindService:
		ge.retryable = true
	}
	return ge
}

type InternalError struct {
	msg string
}

func (e *InternalError) Error() string {
	return e.msg
}

func (e *InternalError) Retryable() bool {
	return false
}

func (e *InternalError) ClientError() bool {
	return false
}

func (e *InternalError) Kind() Kind {
	return KindInternal
}

func NewInternalError(err error) *InternalError {
	if err == nil {
		return nil
	}
	return &InternalError{
		msg: err.Error(),
	}
}

type ClientErr struct {
	msg string
}

func (e *ClientErr) Error() string {
	return e.msg
}

func (e *ClientErr) Retryable() bool {
	return false
}

func (e *ClientErr) ClientError() bool {
	return true
}

func (e *ClientErr) Kind() Kind {
	return KindInvalidInput
}

func NewClientError(err error) *ClientErr {
	if err == nil {
		return nil
	}
	return &ClientErr{
		msg: err.Error(),
	}
}

type RetryableInternalError struct {
	msg string
}

func (e *RetryableInternalError) Error() string {
	return e.msg
}

func (e *RetryableInternalError) Retryable() bool {
	return true
}

func (e *RetryableInternalError) ClientError() bool {
	return false
}

func (e *RetryableInternalError) Kind() Kind {
	return KindService
}

func NewRetryableInternalError(err error) *RetryableInternalError {
	if err == nil {
		return nil
	}
	return &RetryableInternalError{
		msg: err.Error(),
	}
}

type RetryableClientError struct {
	msg string
}

func (e *RetryableClientError) Error() string {
	return e.msg
}

func (e *RetryableClientError) Retryable() bool {
	return true
}

func (e *RetryableClientError) ClientError() bool {
	return true
}

func (e *RetryableClientError) Kind() Kind {
	return KindThrottled
}

func NewRetryableClientError(err error) *RetryableClientError {
	if err == nil {
		return nil
	}
	return &RetryableClientError{
		msg: err.Error(),
	}
}

// SessionError is returned by every wrapper built from a session
// whose configuration could not be loaded.
type SessionError struct {
	msg string
}

func (e *SessionError) Error() string {
	return e.msg
}

func (e *SessionError) Retryable() bool {
	return false
}

func (e *SessionError) ClientError() bool {
	return false
}

func (e *SessionError) Kind() Kind {
	return KindSession
}

func NewSessionError(err error) *SessionError {
	if err == nil {
		return nil
	}
	return &SessionError{
		msg: "session unavailable: " + err.Error(),
	}
}

// Fault is the uniform failure shape: {"error": <message>, "kind": <kind>}.
type Fault struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"error"`
}

func (f Fault) String() string {
	b, _ := json.Marshal(f)
	return string(b)
}

// FaultOf converts err into a Fault. Returns nil for a nil error.
func FaultOf(err error) *Fault {
	if err == nil {
		return nil
	}
	ae := Classify(err)
	return &Fault{Kind: ae.Kind(), Message: ae.Error()}
}
