package ports

import "context"

// TranslateClient is a synchronous text translation call.
type TranslateClient interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}
