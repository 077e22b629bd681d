package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/Vovarama1992/audio_translator/internal/config"
	"github.com/Vovarama1992/audio_translator/internal/domain"
	"github.com/Vovarama1992/audio_translator/internal/ports"
)

const noReason = "no reason provided"

// Synthesizer is the voice-selecting synthesis stage.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, targetLang string) ([]byte, error)
}

// Service runs the batch: upload input, transcribe, translate,
// synthesize, persist artifacts. One item's failure never stops the
// batch.
type Service struct {
	cfg        *config.Config
	store      ports.ObjectStore
	jobs       ports.TranscribeClient
	translator ports.TranslateClient
	synth      Synthesizer
	log        *zap.SugaredLogger

	httpClient *http.Client
	now        func() time.Time
	sleep      func(ctx context.Context, d time.Duration) error
}

func NewService(
	cfg *config.Config,
	store ports.ObjectStore,
	jobs ports.TranscribeClient,
	translator ports.TranslateClient,
	synth Synthesizer,
	log *zap.SugaredLogger,
) *Service {
	return &Service{
		cfg:        cfg,
		store:      store,
		jobs:       jobs,
		translator: translator,
		synth:      synth,
		log:        log,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		now:        time.Now,
		sleep:      sleepCtx,
	}
}

// Run processes every .mp3 in the working directory, in listing order,
// one at a time. Returns early only when the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.PullInputs {
		if _, err := s.DownloadInputs(ctx); err != nil {
			s.log.Errorf("pulling inputs: %v", err)
		}
	}

	entries, err := os.ReadDir(s.cfg.InputDir)
	if err != nil {
		s.log.Errorf("read input dir %s: %v", s.cfg.InputDir, err)
		return nil
	}

	for _, e := range entries {
		if e.IsDir() || !isMP3(e.Name()) {
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.log.Infof("--- starting processing for %s ---", e.Name())
		s.ProcessFile(ctx, filepath.Join(s.cfg.InputDir, e.Name()))
		s.log.Infof("--- finished processing for %s ---", e.Name())
	}
	return nil
}

// DownloadInputs mirrors {env}/audio_inputs/ into the local working
// directory and returns the number of files pulled. No matches is a
// no-op, not an error.
func (s *Service) DownloadInputs(ctx context.Context) (int, error) {
	prefix := InputPrefix(s.cfg.Environment)
	keys, err := s.store.List(ctx, prefix)
	if err != nil {
		return 0, fmt.Errorf("list %s: %w", prefix, err)
	}

	if err := os.MkdirAll(s.cfg.InputDir, 0o755); err != nil {
		return 0, fmt.Errorf("create input dir: %w", err)
	}

	count := 0
	for _, key := range keys {
		if !isMP3(key) {
			continue
		}
		local := filepath.Join(s.cfg.InputDir, filepath.Base(key))
		if err := s.store.Download(ctx, key, local); err != nil {
			return count, fmt.Errorf("download %s: %w", key, err)
		}
		s.log.Infof("downloaded s3://%s/%s to %s", s.cfg.Bucket, key, local)
		count++
	}

	if count == 0 {
		s.log.Infof("no .mp3 objects under %s, nothing to pull", prefix)
	}
	return count, nil
}

// ProcessFile runs the full stage sequence for one item. Every failure
// is logged and abandons the item; nothing propagates to the batch.
func (s *Service) ProcessFile(ctx context.Context, path string) {
	filename := filepath.Base(path)
	base := strings.TrimSuffix(filename, filepath.Ext(filename))

	inputKey := InputKey(s.cfg.Environment, filename)
	if err := s.store.Upload(ctx, path, inputKey); err != nil {
		s.log.Errorf("upload %s to s3://%s/%s: %v", path, s.cfg.Bucket, inputKey, err)
		return
	}
	s.log.Infof("uploaded %s to s3://%s/%s", path, s.cfg.Bucket, inputKey)

	jobName := JobName(base, s.now())
	mediaURI := fmt.Sprintf("s3://%s/%s", s.cfg.Bucket, inputKey)
	languageCode := fmt.Sprintf("%s-US", s.cfg.SourceLanguage)
	if err := s.jobs.StartJob(ctx, jobName, mediaURI, languageCode, TranscribeOutputPrefix(s.cfg.Environment)); err != nil {
		s.log.Errorf("start transcription job %s: %v", jobName, err)
		return
	}
	s.log.Infof("transcription job %s started", jobName)

	transcript := s.pollJob(ctx, jobName)
	if transcript == "" {
		s.log.Errorf("could not process %s: transcription produced no text", filename)
		return
	}

	translated, err := s.translator.Translate(ctx, transcript, s.cfg.SourceLanguage, s.cfg.TargetLanguage)
	if err != nil {
		s.log.Errorf("translate %s: %v", filename, err)
		return
	}
	s.log.Infof("text translated to %s", s.cfg.TargetLanguage)

	audio, err := s.synth.Synthesize(ctx, translated, s.cfg.TargetLanguage)
	if err != nil {
		s.log.Errorf("synthesize %s: %v", filename, err)
		return
	}

	env, lang := s.cfg.Environment, s.cfg.TargetLanguage
	s.putArtifact(ctx, TranscriptKey(env, base), []byte(transcript), "text/plain")
	s.putArtifact(ctx, TranslationKey(env, base, lang), []byte(translated), "text/plain")
	s.putArtifact(ctx, AudioOutputKey(env, base, lang), audio, "audio/mpeg")
}

// putArtifact uploads one output object. A failed artifact is logged and
// skipped so the remaining ones still persist.
func (s *Service) putArtifact(ctx context.Context, key string, body []byte, contentType string) {
	if err := s.store.Put(ctx, key, body, contentType); err != nil {
		s.log.Errorf("upload s3://%s/%s: %v", s.cfg.Bucket, key, err)
		return
	}
	s.log.Infof("uploaded s3://%s/%s", s.cfg.Bucket, key)
}

// pollJob queries the job every PollInterval until it reaches a terminal
// state, the context is cancelled, or the optional PollTimeout elapses.
// Any failure yields an empty transcript; nothing propagates.
func (s *Service) pollJob(ctx context.Context, jobName string) string {
	var deadline time.Time
	if s.cfg.PollTimeout > 0 {
		deadline = s.now().Add(s.cfg.PollTimeout)
	}

	for {
		state, err := s.jobs.GetJob(ctx, jobName)
		if err != nil {
			s.log.Errorf("query transcription job %s: %v", jobName, err)
			return ""
		}

		if state.Status.Terminal() {
			if state.Status == domain.JobFailed {
				reason := state.FailureReason
				if reason == "" {
					reason = noReason
				}
				s.log.Errorf("transcription job %s failed: %s", jobName, reason)
				return ""
			}
			if state.TranscriptURI == "" {
				s.log.Errorf("transcription job %s completed without a transcript location", jobName)
				return ""
			}
			return s.fetchTranscript(ctx, state.TranscriptURI)
		}

		s.log.Infof("transcription job %s status: %s, waiting", jobName, state.Status)

		if !deadline.IsZero() && !s.now().Before(deadline) {
			s.log.Errorf("transcription job %s did not finish within %s", jobName, s.cfg.PollTimeout)
			return ""
		}
		if err := s.sleep(ctx, s.cfg.PollInterval); err != nil {
			s.log.Errorf("polling transcription job %s: %v", jobName, err)
			return ""
		}
	}
}

// fetchTranscript reads the result document and extracts the first
// alternative transcript. Fetch and parse errors are logged and yield an
// empty result.
func (s *Service) fetchTranscript(ctx context.Context, uri string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		s.log.Errorf("fetch transcript: %v", err)
		return ""
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.log.Errorf("fetch transcript: %v", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.log.Errorf("fetch transcript: unexpected status %s", resp.Status)
		return ""
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.log.Errorf("read transcript: %v", err)
		return ""
	}

	var doc domain.TranscriptDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		s.log.Errorf("decode transcript: %v", err)
		return ""
	}

	text, ok := doc.Text()
	if !ok {
		s.log.Errorf("transcript document has no transcripts")
		return ""
	}
	return text
}

func isMP3(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".mp3")
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
