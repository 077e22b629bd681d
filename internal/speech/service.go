package speech

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Vovarama1992/audio_translator/internal/domain"
	"github.com/Vovarama1992/audio_translator/internal/ports"
)

// Service picks a voice for the target language and handles the one-shot
// engine downgrade when the service rejects the neural engine.
type Service struct {
	tts ports.SpeechClient
	log *zap.SugaredLogger
}

func NewService(tts ports.SpeechClient, log *zap.SugaredLogger) *Service {
	return &Service{tts: tts, log: log}
}

func (s *Service) Synthesize(ctx context.Context, text, targetLang string) ([]byte, error) {
	voice := VoiceFor(targetLang)

	audio, err := s.tts.Synthesize(ctx, text, voice, EngineNeural)
	if errors.Is(err, domain.ErrEngineNotSupported) {
		s.log.Infof("voice %s does not support the neural engine, retrying with standard", voice)
		audio, err = s.tts.Synthesize(ctx, text, voice, EngineStandard)
	}
	if err != nil {
		return nil, err
	}

	s.log.Infof("speech synthesized with voice %s", voice)
	return audio, nil
}
