package client

import (
	"context"

	"github.com/dmitrijs2005/carbonnft/internal/client/models"
	"github.com/dmitrijs2005/carbonnft/internal/common"
)

// ContentGenerator produces the description and image for a booking.
// Implementations return an error matching common.ErrGeneration on any
// failure and never return partial content.
type ContentGenerator interface {
	Generate(ctx context.Context, req models.BookingRequest) (models.GeneratedContent, error)
}

// unavailableGenerator fails every request; it stands in when the real
// generator could not be built, so the rest of the client stays usable.
type unavailableGenerator struct {
	cause error
}

// NewUnavailableGenerator returns a ContentGenerator whose every call fails
// with common.ErrGeneration wrapping cause.
func NewUnavailableGenerator(cause error) ContentGenerator {
	return unavailableGenerator{cause: cause}
}

func (u unavailableGenerator) Generate(ctx context.Context, req models.BookingRequest) (models.GeneratedContent, error) {
	return models.GeneratedContent{}, common.NewUserError(common.ErrGeneration, GenerationFailedMessage, u.cause)
}
