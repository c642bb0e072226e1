// Package middleware reads JSON request bodies into Describe-based types at
// HTTP boundaries. Router adapters live in the gin and echo sub-modules.
package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/reoring/ezjson"
)

// ctxKeyDecoded is a typed context key for storing a decoded *T.
// Using a generic struct type ensures uniqueness per T.
type ctxKeyDecoded[T any] struct{}

// ContextWithDecoded attaches v to the context.
func ContextWithDecoded[T any](ctx context.Context, v *T) context.Context {
	return context.WithValue(ctx, ctxKeyDecoded[T]{}, v)
}

// DecodedFromContext retrieves the *T stored by ContextWithDecoded.
func DecodedFromContext[T any](ctx context.Context) (*T, bool) {
	v, ok := ctx.Value(ctxKeyDecoded[T]{}).(*T)
	return v, ok
}

// DefaultMaxBytes caps request bodies when the caller does not.
const DefaultMaxBytes = 1 << 20

// DefaultReadOpt returns a recommended default for HTTP JSON boundaries.
// - Duplicate keys are errors
// - Bodies are limited to DefaultMaxBytes
func DefaultReadOpt() ezjson.ReadOpt {
	return ezjson.ReadOpt{OnDuplicateKey: ezjson.Fail, MaxBytes: DefaultMaxBytes}
}

// Resolve substitutes DefaultReadOpt for a zero-valued opt.
func Resolve(opt ezjson.ReadOpt) ezjson.ReadOpt {
	if opt.Driver == nil && opt.OnDuplicateKey == ezjson.Ignore && opt.MaxBytes == 0 && opt.MaxDepth == 0 {
		return DefaultReadOpt()
	}
	return opt
}

// ReadBody reads body into a fresh T. Bodies larger than opt.MaxBytes fail
// with ezjson.CodeTruncated without being read to the end.
func ReadBody[T any, PT ezjson.DescriberPtr[T]](body io.Reader, opt ezjson.ReadOpt) (*T, error) {
	r := body
	if opt.MaxBytes > 0 {
		r = io.LimitReader(body, opt.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	v := new(T)
	if err := ezjson.Read(data, PT(v), opt); err != nil {
		return nil, err
	}
	return v, nil
}

// errorBody is the response document for a failed read.
type errorBody struct {
	Code    string
	Pointer string
	Message string
}

func (e *errorBody) Describe(ar ezjson.Archive) {
	ar.String("code", &e.Code)
	ar.String("pointer", &e.Pointer)
	ar.String("message", &e.Message)
}

// ErrorPayload renders err as {"code", "pointer", "message"}. Errors that
// are not *ezjson.Error get code "invalid_format" and pointer "/".
func ErrorPayload(err error) []byte {
	b := errorBody{Code: ezjson.CodeInvalidFormat, Pointer: "/", Message: err.Error()}
	var e *ezjson.Error
	if errors.As(err, &e) {
		b.Code = e.Code
		b.Pointer = e.Pointer()
	}
	out, werr := ezjson.Write(&b, ezjson.Compact)
	if werr != nil {
		return []byte(`{"code":"invalid_format","pointer":"/","message":"internal error"}`)
	}
	return out
}

// WriteError replies 400 with ErrorPayload(err).
func WriteError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_, _ = w.Write(ErrorPayload(err))
}

// DecodeJSON returns net/http middleware that reads the request body into a
// T, stores it in the request context on success, and replies 400 with
// ErrorPayload on failure. A zero opt selects DefaultReadOpt.
func DecodeJSON[T any, PT ezjson.DescriberPtr[T]](opt ezjson.ReadOpt) func(http.Handler) http.Handler {
	opt = Resolve(opt)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v, err := ReadBody[T, PT](r.Body, opt)
			if err != nil {
				WriteError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithDecoded(r.Context(), v)))
		})
	}
}
