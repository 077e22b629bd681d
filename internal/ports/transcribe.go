package ports

import (
	"context"

	"github.com/Vovarama1992/audio_translator/internal/domain"
)

// TranscribeClient drives the asynchronous speech-to-text service.
type TranscribeClient interface {
	// StartJob submits a job for the media object at mediaURI. The
	// service writes its own result copy under outputKey.
	StartJob(ctx context.Context, jobName, mediaURI, languageCode, outputKey string) error

	// GetJob returns the current state of a submitted job.
	GetJob(ctx context.Context, jobName string) (domain.JobState, error)
}
