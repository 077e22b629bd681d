package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	"github.com/aws/aws-sdk-go-v2/service/transcribe"
	"github.com/aws/aws-sdk-go-v2/service/translate"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Vovarama1992/audio_translator/internal/config"
	"github.com/Vovarama1992/audio_translator/internal/infra"
	"github.com/Vovarama1992/audio_translator/internal/pipeline"
	"github.com/Vovarama1992/audio_translator/internal/speech"
)

func main() {

	// =========================================================================
	// ENV / CONFIG
	// =========================================================================

	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	logger := baseLogger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// =========================================================================
	// INFRASTRUCTURE
	// =========================================================================

	store, err := infra.NewObjectStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to init s3: %v", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("failed to load aws config: %v", err)
	}

	jobs := infra.NewTranscribeClient(transcribe.NewFromConfig(awsCfg), cfg.Bucket)
	translator := infra.NewTranslateClient(translate.NewFromConfig(awsCfg))
	tts := infra.NewPollyClient(polly.NewFromConfig(awsCfg))

	// =========================================================================
	// PIPELINE
	// =========================================================================

	synth := speech.NewService(tts, logger)
	svc := pipeline.NewService(cfg, store, jobs, translator, synth, logger)

	logger.Infof("processing bucket %s, environment %s", cfg.Bucket, cfg.Environment)
	if err := svc.Run(ctx); err != nil {
		logger.Errorf("run interrupted: %v", err)
	}
}
