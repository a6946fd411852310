package usecase

import "errors"

// Kind is a stable, enumerable failure category. Callers branch on Kind,
// never on message content.
type Kind string

const (
	KindNotFound         Kind = "NOT_FOUND"
	KindDuplicateEmail   Kind = "DUPLICATE_EMAIL"
	KindInvalidPhone     Kind = "INVALID_PHONE_FORMAT"
	KindInvalidEmail     Kind = "INVALID_EMAIL_FORMAT"
	KindPermissionDenied Kind = "PERMISSION_DENIED"
	KindPersistence      Kind = "PERSISTENCE_ERROR"
)

// Failure is an expected business-rule violation. Use cases return it in
// place of a payload; infrastructure errors travel as ordinary wrapped errors
// and are never a Failure.
type Failure struct {
	Kind    Kind
	Message string
}

func (f *Failure) Error() string { return f.Message }

func fail(kind Kind, message string) *Failure {
	return &Failure{Kind: kind, Message: message}
}

// AsFailure unwraps err into a Failure, or nil if err is infrastructural.
func AsFailure(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return nil
}

// IsKind reports whether err is a Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	f := AsFailure(err)
	return f != nil && f.Kind == kind
}
