// Package database builds the AWS clients behind the optional store drivers.
package database

import (
	"context"
	"fmt"
	"os"

	"maintup/pkg"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoSettings is the environment surface of the dynamo store driver. An
// empty Endpoint targets the real AWS service; anything else (e.g.
// http://dynamodb:8000) pins the client to a local instance.
type DynamoSettings struct {
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
}

// DynamoSettingsFromEnv reads AWS_REGION, AWS_ACCESS_KEY_ID,
// AWS_SECRET_ACCESS_KEY and DYNAMODB_ENDPOINT, with local-friendly defaults.
func DynamoSettingsFromEnv() DynamoSettings {
	return DynamoSettings{
		Region:    pkg.GetenvDefault("AWS_REGION", "us-east-1"),
		AccessKey: pkg.GetenvDefault("AWS_ACCESS_KEY_ID", "local"),
		SecretKey: pkg.GetenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		Endpoint:  os.Getenv("DYNAMODB_ENDPOINT"),
	}
}

// NewDynamoClient builds the ledger's DynamoDB client from the given
// settings.
func NewDynamoClient(ctx context.Context, settings DynamoSettings) (*dynamodb.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(settings.Region),
		// Local DynamoDB ignores credentials, but the SDK insists on having
		// some.
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(settings.AccessKey, settings.SecretKey, ""),
		),
	}
	if settings.Endpoint != "" {
		opts = append(opts, config.WithEndpointResolverWithOptions(localResolver(settings.Endpoint)))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg), nil
}

// localResolver routes every DynamoDB call to the fixed endpoint and leaves
// other services unresolved.
func localResolver(endpoint string) aws.EndpointResolverWithOptionsFunc {
	return func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
		if service == dynamodb.ServiceID {
			return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	}
}
