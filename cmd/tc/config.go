package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is read from TC_* environment variables (optionally via .env).
type Config struct {
	AccessToken    string `envconfig:"KINGTIME_ACCESS_TOKEN"`
	EmployeeNumber string `envconfig:"EMPLOYEE_NUMBER" required:"true"`
	BaseURL        string `envconfig:"KINGTIME_BASE_URL"`
	TokenSSMParam  string `envconfig:"TOKEN_SSM_PARAM"`
	SlackToken     string `envconfig:"SLACK_TOKEN"`
	SlackChannel   string `envconfig:"SLACK_CHANNEL"`
}

func loadConfig(ctx context.Context) (*Config, error) {
	_ = godotenv.Load() // best effort, real env wins

	var cfg Config
	if err := envconfig.Process("tc", &cfg); err != nil {
		return nil, err
	}

	if cfg.AccessToken == "" && cfg.TokenSSMParam != "" {
		token, err := tokenFromSSM(ctx, cfg.TokenSSMParam)
		if err != nil {
			return nil, err
		}
		cfg.AccessToken = token
	}
	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("TC_KINGTIME_ACCESS_TOKEN or TC_TOKEN_SSM_PARAM must be set")
	}
	return &cfg, nil
}

func tokenFromSSM(ctx context.Context, paramName string) (string, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("load aws config: %w", err)
	}

	client := ssm.NewFromConfig(cfg)

	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(paramName),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get parameter: %w", err)
	}
	return *out.Parameter.Value, nil
}
