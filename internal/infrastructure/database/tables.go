package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	appconfig "ordenes_campo/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ReconciliationsByOrderIndex is the GSI used to list reconciliation runs of one order.
const ReconciliationsByOrderIndex = "order_id-index"

// EnsureTables creates the service tables when they do not exist yet. Meant for DynamoDB
// Local; production tables are provisioned outside the service.
func EnsureTables(ctx context.Context, client *dynamodb.Client, cfg *appconfig.Config) error {
	tables := []*dynamodb.CreateTableInput{
		{
			TableName: aws.String(cfg.DynamoDB.TransitionsTable),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
			BillingMode: types.BillingModePayPerRequest,
		},
		{
			TableName: aws.String(cfg.DynamoDB.ReconciliationsTable),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("order_id"), AttributeType: types.ScalarAttributeTypeN},
				{AttributeName: aws.String("created_at"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				{
					IndexName: aws.String(ReconciliationsByOrderIndex),
					KeySchema: []types.KeySchemaElement{
						{AttributeName: aws.String("order_id"), KeyType: types.KeyTypeHash},
						{AttributeName: aws.String("created_at"), KeyType: types.KeyTypeRange},
					},
					Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
				},
			},
			BillingMode: types.BillingModePayPerRequest,
		},
	}

	for _, in := range tables {
		name := aws.ToString(in.TableName)
		_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName})
		if err == nil {
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return fmt.Errorf("describe table %s: %w", name, err)
		}

		if _, err := client.CreateTable(ctx, in); err != nil {
			return fmt.Errorf("create table %s: %w", name, err)
		}
		waiter := dynamodb.NewTableExistsWaiter(client)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName}, time.Minute); err != nil {
			return fmt.Errorf("wait table %s: %w", name, err)
		}
		log.Printf("[dynamodb] table created name=%s", name)
	}
	return nil
}
