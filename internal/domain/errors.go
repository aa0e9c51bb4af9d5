package domain

import "errors"

// ErrMalformedResponse — провайдер ответил, но без ожидаемых полей.
// Клиенты провайдеров оборачивают его в свои ошибки.
var ErrMalformedResponse = errors.New("malformed provider response")
