package errcode

type Code string

const (
	// Empty — ввод неполный, показывать нечего
	Empty Code = "EMPTY"
	// NoResults — провайдер вернул пустые или неполные данные
	NoResults Code = "NO_RESULTS"
	// ServiceUnavailable — провайдер недоступен (сеть, таймаут, не-2xx)
	ServiceUnavailable Code = "SERVICE_UNAVAILABLE"

	BadRequest Code = "BAD_REQUEST"
	Internal   Code = "INTERNAL_ERROR"
)

// Message — текст для пользователя
func Message(c Code) string {
	switch c {
	case Empty:
		return ""
	case NoResults:
		return "No Results Found"
	case ServiceUnavailable:
		return "Service unavailable"
	case BadRequest:
		return "Bad request"
	default:
		return "Internal error"
	}
}
