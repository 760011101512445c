package client

import "errors"

// GenerationFailedMessage is shown to the user whenever generation fails.
const GenerationFailedMessage = "Failed to generate NFT content. Please check your API key and try again."

var (
	ErrNoAPIKey         = errors.New("generative API key is not set")
	ErrEmptyDescription = errors.New("empty description returned")
	ErrNoImage          = errors.New("image generation failed")
)
