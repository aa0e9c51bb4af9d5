package httptransport

import (
	"errors"

	"github.com/NastyaGoryachaya/crypto-trends/internal/ports/errcode"
	"github.com/NastyaGoryachaya/crypto-trends/internal/service/pipeline"
)

// FromPipelineReason переводит причину из QueryResult в код транспорта
func FromPipelineReason(err error) errcode.Code {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, pipeline.ErrInputIncomplete):
		return errcode.Empty
	case errors.Is(err, pipeline.ErrProviderUnreachable):
		return errcode.ServiceUnavailable
	case errors.Is(err, pipeline.ErrProviderEmpty),
		errors.Is(err, pipeline.ErrProviderMalformed):
		return errcode.NoResults
	default:
		return errcode.Internal
	}
}
