package bot

import (
	"errors"

	"github.com/NastyaGoryachaya/crypto-trends/internal/domain"
	"github.com/NastyaGoryachaya/crypto-trends/internal/ports/errcode"
	"github.com/NastyaGoryachaya/crypto-trends/internal/service/pipeline"
)

// translateResult — сообщение для исхода без графика
func translateResult(res domain.QueryResult) string {
	switch {
	case errors.Is(res.Reason, pipeline.ErrInputIncomplete):
		return "Укажи монету и запрос: /trend BTC bitcoin"
	case errors.Is(res.Reason, pipeline.ErrProviderUnreachable):
		return errcode.Message(errcode.ServiceUnavailable)
	case errors.Is(res.Reason, pipeline.ErrProviderEmpty),
		errors.Is(res.Reason, pipeline.ErrProviderMalformed):
		return errcode.Message(errcode.NoResults)
	default:
		return "Внутренняя ошибка сервиса, попробуйте позже"
	}
}
