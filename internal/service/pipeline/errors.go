package pipeline

import "errors"

var (
	ErrInputIncomplete     = errors.New("search term or coin not provided")
	ErrProviderEmpty       = errors.New("provider returned no records")
	ErrProviderMalformed   = errors.New("provider response is missing expected fields")
	ErrProviderUnreachable = errors.New("provider unreachable")
)
