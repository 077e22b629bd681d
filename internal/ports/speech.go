package ports

import "context"

// SpeechClient converts text to encoded audio with a specific voice and
// engine. Engine selection and fallback live above this interface.
type SpeechClient interface {
	Synthesize(ctx context.Context, text, voiceID, engine string) ([]byte, error)
}
