package pipeline

import (
	"fmt"
	"strings"
	"time"
)

// Object key layout. Consumers of the bucket depend on these exact
// patterns, so they are built in one place.

func InputPrefix(env string) string {
	return env + "/audio_inputs/"
}

func InputKey(env, filename string) string {
	return fmt.Sprintf("%s/audio_inputs/%s", env, filename)
}

// TranscribeOutputPrefix is where the transcription service writes its
// own result copy ({prefix}{job_name}.json). The trailing slash makes
// the service append the job name.
func TranscribeOutputPrefix(env string) string {
	return env + "/transcribe-output/"
}

func TranscriptKey(env, base string) string {
	return fmt.Sprintf("%s/transcripts/%s.txt", env, base)
}

func TranslationKey(env, base, lang string) string {
	return fmt.Sprintf("%s/translations/%s_%s.txt", env, base, lang)
}

func AudioOutputKey(env, base, lang string) string {
	return fmt.Sprintf("%s/audio-outputs/%s_%s.mp3", env, base, lang)
}

// SanitizeJobName replaces every character the transcription service
// rejects in job names with a hyphen.
func SanitizeJobName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

func JobName(base string, now time.Time) string {
	return fmt.Sprintf("job-%s-%d", SanitizeJobName(base), now.Unix())
}
