package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// DynamoConfig is the connection part of the service configuration.
//
// Local DynamoDB does not validate credentials, but the AWS SDK requires them, so
// AccessKeyID and SecretAccessKey default to "local".
type DynamoConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// ConnectDynamoDB creates a DynamoDB client. Endpoint is optional, e.g.
// http://dynamodb:8000 for DynamoDB Local.
func ConnectDynamoDB(ctx context.Context, c DynamoConfig) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg), nil
}

func NewDynamoDBConfig(ctx context.Context, c DynamoConfig) (aws.Config, error) {
	region := c.Region
	if region == "" {
		region = "us-east-1"
	}
	accessKey, secretKey := c.AccessKeyID, c.SecretAccessKey
	if accessKey == "" {
		accessKey = "local"
	}
	if secretKey == "" {
		secretKey = "local"
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	}

	if c.Endpoint != "" {
		endpoint := c.Endpoint
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

const tableWaitTimeout = 2 * time.Minute

// IndexSpec is a global secondary index with string keys and full projection.
type IndexSpec struct {
	Name     string
	HashKey  string
	RangeKey string
}

// TableSpec is a table keyed by the string attribute "id".
type TableSpec struct {
	Name    string
	Indexes []IndexSpec
}

// EnsureDynamoTables creates the missing tables (on-demand billing) and waits
// until they are active. Existing tables are left untouched.
func EnsureDynamoTables(ctx context.Context, ddb *dynamodb.Client, specs []TableSpec) error {
	for _, spec := range specs {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)})
		if err == nil {
			zap.L().Info("[database][dynamodb] table exists", zap.String("table", spec.Name))
			continue
		}
		var nf *types.ResourceNotFoundException
		if !errors.As(err, &nf) {
			return fmt.Errorf("describe table %s: %w", spec.Name, err)
		}

		if _, err := ddb.CreateTable(ctx, createTableInput(spec)); err != nil {
			return fmt.Errorf("create table %s: %w", spec.Name, err)
		}
		waiter := dynamodb.NewTableExistsWaiter(ddb)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)}, tableWaitTimeout); err != nil {
			return fmt.Errorf("wait for table %s: %w", spec.Name, err)
		}
		zap.L().Info("[database][dynamodb] table created", zap.String("table", spec.Name), zap.Int("indexes", len(spec.Indexes)))
	}
	return nil
}

func createTableInput(spec TableSpec) *dynamodb.CreateTableInput {
	attrs := map[string]bool{"id": true}
	gsis := make([]types.GlobalSecondaryIndex, 0, len(spec.Indexes))
	for _, idx := range spec.Indexes {
		schema := []types.KeySchemaElement{{AttributeName: aws.String(idx.HashKey), KeyType: types.KeyTypeHash}}
		attrs[idx.HashKey] = true
		if idx.RangeKey != "" {
			schema = append(schema, types.KeySchemaElement{AttributeName: aws.String(idx.RangeKey), KeyType: types.KeyTypeRange})
			attrs[idx.RangeKey] = true
		}
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName:  aws.String(idx.Name),
			KeySchema:  schema,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	defs := make([]types.AttributeDefinition, 0, len(attrs))
	for name := range attrs {
		defs = append(defs, types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeS})
	}

	in := &dynamodb.CreateTableInput{
		TableName:            aws.String(spec.Name),
		AttributeDefinitions: defs,
		KeySchema:            []types.KeySchemaElement{{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash}},
		BillingMode:          types.BillingModePayPerRequest,
	}
	if len(gsis) > 0 {
		in.GlobalSecondaryIndexes = gsis
	}
	return in
}
