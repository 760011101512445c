package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/carbonnft/internal/client/models"
	"github.com/dmitrijs2005/carbonnft/internal/common"
	"github.com/dmitrijs2005/carbonnft/internal/logging"
	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"
)

const (
	DefaultTextModel  = "gemini-2.5-flash"
	DefaultImageModel = "imagen-4.0-generate-001"

	imageMIMEType = "image/jpeg"
)

// modelsAPI is the part of *genai.Models the generator uses.
type modelsAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateImages(ctx context.Context, model string, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

// GenAIGenerator is the ContentGenerator backed by the Gemini API: a text
// model writes the description and an image model paints the picture.
type GenAIGenerator struct {
	models     modelsAPI
	textModel  string
	imageModel string
	log        logging.Logger
}

// NewGenAIGenerator creates a Gemini API client. Empty model names fall
// back to DefaultTextModel and DefaultImageModel.
func NewGenAIGenerator(ctx context.Context, apiKey, textModel, imageModel string, log logging.Logger) (*GenAIGenerator, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return newGenAIGenerator(c.Models, textModel, imageModel, log), nil
}

func newGenAIGenerator(m modelsAPI, textModel, imageModel string, log logging.Logger) *GenAIGenerator {
	if textModel == "" {
		textModel = DefaultTextModel
	}
	if imageModel == "" {
		imageModel = DefaultImageModel
	}
	return &GenAIGenerator{models: m, textModel: textModel, imageModel: imageModel, log: log}
}

// Generate runs the description and image calls concurrently and waits for
// both. Any failure cancels the other call and is reported as a single
// common.ErrGeneration with GenerationFailedMessage.
func (g *GenAIGenerator) Generate(ctx context.Context, req models.BookingRequest) (models.GeneratedContent, error) {
	var content models.GeneratedContent

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		d, err := g.generateDescription(egCtx, req)
		if err != nil {
			return fmt.Errorf("description: %w", err)
		}
		content.Description = d
		return nil
	})

	eg.Go(func() error {
		img, err := g.generateImage(egCtx, req)
		if err != nil {
			return fmt.Errorf("image: %w", err)
		}
		content.ImageURL = img
		return nil
	})

	if err := eg.Wait(); err != nil {
		g.log.Error(ctx, "error generating carbon NFT", "project", req.ProjectName, "error", err)
		return models.GeneratedContent{}, common.NewUserError(common.ErrGeneration, GenerationFailedMessage, err)
	}

	return content, nil
}

func (g *GenAIGenerator) generateDescription(ctx context.Context, req models.BookingRequest) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.textModel, genai.Text(descriptionPrompt(req)), nil)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", ErrEmptyDescription
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyDescription
	}
	return text, nil
}

func (g *GenAIGenerator) generateImage(ctx context.Context, req models.BookingRequest) (string, error) {
	resp, err := g.models.GenerateImages(ctx, g.imageModel, imagePrompt(req), &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    "1:1",
		OutputMIMEType: imageMIMEType,
	})
	if err != nil {
		return "", err
	}

	if resp == nil || len(resp.GeneratedImages) == 0 {
		return "", ErrNoImage
	}
	img := resp.GeneratedImages[0].Image
	if img == nil || len(img.ImageBytes) == 0 {
		return "", ErrNoImage
	}

	return "data:" + imageMIMEType + ";base64," + base64.StdEncoding.EncodeToString(img.ImageBytes), nil
}

func descriptionPrompt(req models.BookingRequest) string {
	return fmt.Sprintf(`Generate a creative and inspiring description for a Carbon Credit NFT.
The project is named %q, located in %q, and represents an offset of %v tons of CO2.
The description should be futuristic, hopeful, and emphasize the unique digital ownership of this environmental contribution.
Keep it concise and powerful, under 80 words.`, req.ProjectName, req.Location, req.CO2Tons)
}

func imagePrompt(req models.BookingRequest) string {
	return fmt.Sprintf(`Create a stunning digital art piece for an NFT representing a carbon offset project.
The theme is "%s in %s".
It should look futuristic, abstract, and blend elements of nature (like forests, oceans, clean air) with glowing, digital, geometric patterns.
The overall feeling should be hopeful and technologically advanced.
Focus on vibrant colors, high detail, and cinematic lighting. Style: ethereal digital art.`, req.ProjectName, req.Location)
}
