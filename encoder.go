package hxtoggle

import (
	"errors"

	"github.com/pthm/hxtoggle/lib/encoding"
)

// Encoder is an alias for encoding.Encoder for convenience.
type Encoder = encoding.Encoder

// Encodable is implemented by props that can encode themselves.
type Encodable = encoding.Encodable

// Decodable is implemented by props that can decode themselves.
type Decodable = encoding.Decodable

// NewEncoder creates a new encoder with the given key.
func NewEncoder(key []byte) (*Encoder, error) {
	return encoding.NewEncoder(key)
}

// encodingErrors maps encoding package errors onto hxtoggle sentinels.
var encodingErrors = []struct{ from, to error }{
	{encoding.ErrInvalidFormat, ErrInvalidFormat},
	{encoding.ErrSignatureInvalid, ErrSignatureInvalid},
	{encoding.ErrDecryptFailed, ErrDecryptFailed},
}

func wrapEncodingError(err error) error {
	for _, m := range encodingErrors {
		if errors.Is(err, m.from) {
			return m.to
		}
	}
	return err
}
