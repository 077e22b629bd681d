package infra

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	"github.com/aws/aws-sdk-go-v2/service/polly/types"
	"github.com/aws/smithy-go"

	"github.com/Vovarama1992/audio_translator/internal/domain"
	"github.com/Vovarama1992/audio_translator/internal/ports"
)

type pollyClient struct {
	api *polly.Client
}

func NewPollyClient(api *polly.Client) ports.SpeechClient {
	return &pollyClient{api: api}
}

func (c *pollyClient) Synthesize(ctx context.Context, text, voiceID, engine string) ([]byte, error) {
	out, err := c.api.SynthesizeSpeech(ctx, &polly.SynthesizeSpeechInput{
		Text:         aws.String(text),
		VoiceId:      types.VoiceId(voiceID),
		OutputFormat: types.OutputFormatMp3,
		Engine:       types.Engine(engine),
	})
	if err != nil {
		if isEngineReject(err) {
			return nil, fmt.Errorf("%w: voice %s, engine %s", domain.ErrEngineNotSupported, voiceID, engine)
		}
		return nil, fmt.Errorf("synthesize with voice %s: %w", voiceID, err)
	}
	defer out.AudioStream.Close()

	audio, err := io.ReadAll(out.AudioStream)
	if err != nil {
		return nil, fmt.Errorf("read audio stream: %w", err)
	}
	return audio, nil
}

// isEngineReject detects the service refusing the engine/voice pairing.
// Polly reports it as EngineNotSupportedException, older deployments as a
// generic ValidationException.
func isEngineReject(err error) bool {
	var engineErr *types.EngineNotSupportedException
	if errors.As(err, &engineErr) {
		return true
	}
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "ValidationException"
}
