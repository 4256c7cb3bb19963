package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"go.uber.org/zap"

	"github.com/nituparimi/genAI/internal/config"
	"github.com/nituparimi/genAI/internal/handler"
	"github.com/nituparimi/genAI/internal/logging"
	"github.com/nituparimi/genAI/internal/mail"
	"github.com/nituparimi/genAI/internal/quote"
)

func main() {
	config.LoadDotenv(os.Getenv(config.EnvDotenvSelector))

	logger, err := logging.New(os.Getenv(config.EnvLogLevel))
	if err != nil {
		log.Fatalln("logger error: " + err.Error())
	}

	ctx := context.Background()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		logger.Fatal("configuration error", zap.Error(err))
	}

	getenv := os.Getenv
	if prefix := os.Getenv(config.EnvSSMPath); prefix != "" {
		params, err := config.ParametersFromSSM(ctx, ssm.NewFromConfig(awsCfg), config.NewSSMPaginator, prefix)
		if err != nil {
			logger.Fatal("could not get SSM parameters", zap.String("path", prefix), zap.Error(err))
		}
		getenv = config.Overlay(os.Getenv, params)
	}

	cfg, err := config.Load(getenv)
	if err != nil {
		logger.Fatal("missing one or more required environment variables", zap.Error(err))
	}

	sesClient := sesv2.NewFromConfig(awsCfg, func(o *sesv2.Options) {
		o.Region = cfg.MailRegion
	})
	bedrockClient := bedrockruntime.NewFromConfig(awsCfg, func(o *bedrockruntime.Options) {
		o.Region = cfg.InferenceRegion
	})

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	h := handler.New(handler.Config{
		Notifier:  mail.NewNotifier(sesClient, cfg, logger),
		Generator: quote.NewGenerator(bedrockClient, cfg.ModelID, quote.NewPromptTemplate(r), logger),
		Responder: mail.NewResponder(sesClient, cfg, logger),
		Logger:    logger,
	})

	logger.Info("Lambda function configured and ready.")
	lambda.Start(h.HandleSubmission)
}
