package speech

// Engines the synthesis service understands.
const (
	EngineNeural   = "neural"
	EngineStandard = "standard"
)

const fallbackVoice = "Joanna"

var voiceByLanguage = map[string]string{
	"es": "Lupe",
}

// VoiceFor maps a target language to a voice id. Unknown languages get
// the fallback voice.
func VoiceFor(lang string) string {
	if v, ok := voiceByLanguage[lang]; ok {
		return v
	}
	return fallbackVoice
}
