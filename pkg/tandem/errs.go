package tandem

import (
	"errors"
	"reflect"
)

// ErrList is a flat, order-preserving list of errors with a combining
// capability, so it can carry every failure produced by merge-flavored
// combination. It behaves as a single error and unwraps to its parts.
type ErrList []error

// Errs builds an ErrList, flattening joined errors and dropping nils.
func Errs(errs ...error) ErrList {
	out := make(ErrList, 0, len(errs))
	for _, err := range errs {
		out = append(out, Flatten(err)...)
	}
	return out
}

// Combine appends other after the receiver, preserving order.
func (e ErrList) Combine(other ErrList) ErrList {
	out := make(ErrList, 0, len(e)+len(other))
	out = append(out, e...)
	out = append(out, other...)
	return out
}

func (e ErrList) Error() string {
	if joined := errors.Join(e...); joined != nil {
		return joined.Error()
	}
	return ""
}

func (e ErrList) Unwrap() []error {
	return e
}

// Flatten returns the individual errors behind err: the joined parts if err
// aggregates several, a single-element slice otherwise, empty for nil.
func Flatten(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}
