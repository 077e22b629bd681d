package domain

import "errors"

type JobStatus string

const (
	JobQueued     JobStatus = "QUEUED"
	JobInProgress JobStatus = "IN_PROGRESS"
	JobCompleted  JobStatus = "COMPLETED"
	JobFailed     JobStatus = "FAILED"
)

// Terminal reports whether no further status transition can occur.
func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed
}

// JobState is one poll snapshot of an asynchronous transcription job.
type JobState struct {
	Status        JobStatus
	FailureReason string
	TranscriptURI string
}

// TranscriptDocument is the JSON document the transcription service
// writes for a completed job.
type TranscriptDocument struct {
	Results struct {
		Transcripts []struct {
			Transcript string `json:"transcript"`
		} `json:"transcripts"`
	} `json:"results"`
}

// Text returns the first alternative transcript. Only the first one is
// ever used.
func (d TranscriptDocument) Text() (string, bool) {
	if len(d.Results.Transcripts) == 0 {
		return "", false
	}
	return d.Results.Transcripts[0].Transcript, true
}

var (
	// ErrTextTooLong marks a translation input that exceeds the
	// service's document size limit.
	ErrTextTooLong = errors.New("text exceeds translation size limit")

	// ErrEngineNotSupported marks a synthesis engine/voice pairing the
	// service rejects.
	ErrEngineNotSupported = errors.New("engine not supported for voice")
)
