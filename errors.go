package hxtoggle

import "errors"

// Sentinel errors for toggle operations.
var (
	ErrMissingScope     = errors.New("hxtoggle: no toggle scope in context")
	ErrModeFrozen       = errors.New("hxtoggle: control mode is fixed at construction")
	ErrNotFound         = errors.New("hxtoggle: resource not found")
	ErrDecryptFailed    = errors.New("hxtoggle: parameter decryption failed")
	ErrSignatureInvalid = errors.New("hxtoggle: signature verification failed")
	ErrInvalidFormat    = errors.New("hxtoggle: invalid parameter format")
)

// IsMissingScope checks if err comes from a consumer rendered outside any
// provider scope.
func IsMissingScope(err error) bool {
	return errors.Is(err, ErrMissingScope)
}

// IsNotFound checks if err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDecryptionError checks if err is a decryption or signature error.
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) || errors.Is(err, ErrSignatureInvalid)
}
