package database

import (
	"context"
	"log"

	appconfig "ordenes_campo/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the loaded configuration.
//
// With an endpoint set (e.g. http://dynamodb:8000) the client talks to DynamoDB Local, which
// does not validate the static credentials but still requires them.
func ConnectDynamoDB(cfg *appconfig.Config) *dynamodb.Client {
	awsCfg, err := NewDynamoDBConfig(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}

	endpoint := cfg.DynamoDB.Endpoint
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

func NewDynamoDBConfig(ctx context.Context, cfg *appconfig.Config) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(
		cfg.DynamoDB.AccessKeyID,
		cfg.DynamoDB.SecretAccessKey,
		"",
	)

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.DynamoDB.Region),
		config.WithCredentialsProvider(creds),
	)
}
