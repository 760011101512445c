package client

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/carbonnft/internal/client/models"
	"github.com/dmitrijs2005/carbonnft/internal/common"
	"github.com/dmitrijs2005/carbonnft/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// fakeModels implements modelsAPI and records what it was asked.
type fakeModels struct {
	mu sync.Mutex

	text    string
	textErr error

	images   [][]byte
	imageErr error

	lastTextModel   string
	lastPrompt      string
	lastImageModel  string
	lastImagePrompt string
	lastImageConfig *genai.GenerateImagesConfig
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastTextModel = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.lastPrompt = contents[0].Parts[0].Text
	}
	if f.textErr != nil {
		return nil, f.textErr
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: f.text}}},
		}},
	}, nil
}

func (f *fakeModels) GenerateImages(ctx context.Context, model string, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastImageModel = model
	f.lastImagePrompt = prompt
	f.lastImageConfig = config
	if f.imageErr != nil {
		return nil, f.imageErr
	}
	resp := &genai.GenerateImagesResponse{}
	for _, b := range f.images {
		resp.GeneratedImages = append(resp.GeneratedImages, &genai.GeneratedImage{
			Image: &genai.Image{ImageBytes: b, MIMEType: "image/jpeg"},
		})
	}
	return resp, nil
}

var reef = models.BookingRequest{ProjectName: "Reef Restore", Location: "Fiji", CO2Tons: 5}

func TestGenerate_CombinesDescriptionAndImage(t *testing.T) {
	fm := &fakeModels{text: "  A hopeful reef.  \n", images: [][]byte{[]byte("jpeg")}}
	g := newGenAIGenerator(fm, "", "", logging.Discard())

	got, err := g.Generate(context.Background(), reef)
	require.NoError(t, err)

	assert.Equal(t, "A hopeful reef.", got.Description)
	assert.Equal(t, "data:image/jpeg;base64,anBlZw==", got.ImageURL)

	assert.Equal(t, DefaultTextModel, fm.lastTextModel)
	assert.Equal(t, DefaultImageModel, fm.lastImageModel)
	assert.Contains(t, fm.lastPrompt, `"Reef Restore"`)
	assert.Contains(t, fm.lastPrompt, `"Fiji"`)
	assert.Contains(t, fm.lastPrompt, "5 tons of CO2")
	assert.Contains(t, fm.lastImagePrompt, `"Reef Restore in Fiji"`)
	require.NotNil(t, fm.lastImageConfig)
	assert.EqualValues(t, 1, fm.lastImageConfig.NumberOfImages)
	assert.Equal(t, "1:1", fm.lastImageConfig.AspectRatio)
	assert.Equal(t, "image/jpeg", fm.lastImageConfig.OutputMIMEType)
}

func TestGenerate_CustomModels(t *testing.T) {
	fm := &fakeModels{text: "D", images: [][]byte{{1}}}
	g := newGenAIGenerator(fm, "text-x", "image-y", logging.Discard())

	_, err := g.Generate(context.Background(), reef)
	require.NoError(t, err)
	assert.Equal(t, "text-x", fm.lastTextModel)
	assert.Equal(t, "image-y", fm.lastImageModel)
}

func TestGenerate_FailuresMapToGenerationError(t *testing.T) {
	boom := errors.New("quota exceeded")

	tests := []struct {
		name  string
		fm    *fakeModels
		cause error
	}{
		{name: "text call fails", fm: &fakeModels{textErr: boom, images: [][]byte{{1}}}, cause: boom},
		{name: "image call fails", fm: &fakeModels{text: "D", imageErr: boom}, cause: boom},
		{name: "no images", fm: &fakeModels{text: "D"}, cause: ErrNoImage},
		{name: "empty image bytes", fm: &fakeModels{text: "D", images: [][]byte{{}}}, cause: ErrNoImage},
		{name: "blank description", fm: &fakeModels{text: "   ", images: [][]byte{{1}}}, cause: ErrEmptyDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGenAIGenerator(tt.fm, "", "", logging.Discard())

			got, err := g.Generate(context.Background(), reef)
			require.ErrorIs(t, err, common.ErrGeneration)
			require.ErrorIs(t, err, tt.cause)
			assert.Equal(t, GenerationFailedMessage, err.Error())
			assert.Equal(t, models.GeneratedContent{}, got)
		})
	}
}

func TestNewGenAIGenerator_RequiresAPIKey(t *testing.T) {
	g, err := NewGenAIGenerator(context.Background(), "", "", "", logging.Discard())
	require.ErrorIs(t, err, ErrNoAPIKey)
	require.Nil(t, g)
}

func TestPrompts_MentionBooking(t *testing.T) {
	req := models.BookingRequest{ProjectName: "Amazon Reforestation", Location: "Brazil", CO2Tons: 12.5}

	assert.True(t, strings.Contains(descriptionPrompt(req), "12.5 tons"))
	assert.Contains(t, descriptionPrompt(req), "under 80 words")
	assert.Contains(t, imagePrompt(req), "Amazon Reforestation in Brazil")
}
