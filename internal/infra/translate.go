package infra

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/translate"
	"github.com/aws/aws-sdk-go-v2/service/translate/types"

	"github.com/Vovarama1992/audio_translator/internal/domain"
	"github.com/Vovarama1992/audio_translator/internal/ports"
)

type translateClient struct {
	api *translate.Client
}

func NewTranslateClient(api *translate.Client) ports.TranslateClient {
	return &translateClient{api: api}
}

func (c *translateClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	out, err := c.api.TranslateText(ctx, &translate.TranslateTextInput{
		Text:               aws.String(text),
		SourceLanguageCode: aws.String(sourceLang),
		TargetLanguageCode: aws.String(targetLang),
	})
	if err != nil {
		var tooLong *types.TextSizeLimitExceededException
		if errors.As(err, &tooLong) {
			return "", fmt.Errorf("%w: %s", domain.ErrTextTooLong, tooLong.ErrorMessage())
		}
		return "", fmt.Errorf("translate to %s: %w", targetLang, err)
	}
	return aws.ToString(out.TranslatedText), nil
}
