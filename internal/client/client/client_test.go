package client

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/carbonnft/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnavailableGenerator_AlwaysFails(t *testing.T) {
	g := NewUnavailableGenerator(ErrNoAPIKey)

	got, err := g.Generate(context.Background(), reef)

	require.ErrorIs(t, err, common.ErrGeneration)
	require.ErrorIs(t, err, ErrNoAPIKey)
	assert.Equal(t, GenerationFailedMessage, err.Error())
	assert.Empty(t, got.Description)
	assert.Empty(t, got.ImageURL)
}
