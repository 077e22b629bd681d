package infra

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/transcribe"
	"github.com/aws/aws-sdk-go-v2/service/transcribe/types"

	"github.com/Vovarama1992/audio_translator/internal/domain"
	"github.com/Vovarama1992/audio_translator/internal/ports"
)

type transcribeClient struct {
	api    *transcribe.Client
	bucket string
}

func NewTranscribeClient(api *transcribe.Client, bucket string) ports.TranscribeClient {
	return &transcribeClient{api: api, bucket: bucket}
}

func (c *transcribeClient) StartJob(ctx context.Context, jobName, mediaURI, languageCode, outputKey string) error {
	_, err := c.api.StartTranscriptionJob(ctx, &transcribe.StartTranscriptionJobInput{
		TranscriptionJobName: aws.String(jobName),
		Media:                &types.Media{MediaFileUri: aws.String(mediaURI)},
		MediaFormat:          types.MediaFormatMp3,
		LanguageCode:         types.LanguageCode(languageCode),
		OutputBucketName:     aws.String(c.bucket),
		OutputKey:            aws.String(outputKey),
	})
	if err != nil {
		return fmt.Errorf("start transcription job %s: %w", jobName, err)
	}
	return nil
}

func (c *transcribeClient) GetJob(ctx context.Context, jobName string) (domain.JobState, error) {
	out, err := c.api.GetTranscriptionJob(ctx, &transcribe.GetTranscriptionJobInput{
		TranscriptionJobName: aws.String(jobName),
	})
	if err != nil {
		return domain.JobState{}, fmt.Errorf("get transcription job %s: %w", jobName, err)
	}

	job := out.TranscriptionJob
	state := domain.JobState{Status: mapJobStatus(job.TranscriptionJobStatus)}
	if job.FailureReason != nil {
		state.FailureReason = *job.FailureReason
	}
	if job.Transcript != nil && job.Transcript.TranscriptFileUri != nil {
		state.TranscriptURI = *job.Transcript.TranscriptFileUri
	}
	return state, nil
}

func mapJobStatus(s types.TranscriptionJobStatus) domain.JobStatus {
	switch s {
	case types.TranscriptionJobStatusCompleted:
		return domain.JobCompleted
	case types.TranscriptionJobStatusFailed:
		return domain.JobFailed
	case types.TranscriptionJobStatusQueued:
		return domain.JobQueued
	default:
		return domain.JobInProgress
	}
}
