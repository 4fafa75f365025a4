package compute_quote

import (
	"context"

	computeQuote "github.com/m04kA/SMC-VenueService/internal/usecase/compute_quote"
)

type ComputeQuoteUseCase interface {
	Execute(ctx context.Context, req *computeQuote.Request) (*computeQuote.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
