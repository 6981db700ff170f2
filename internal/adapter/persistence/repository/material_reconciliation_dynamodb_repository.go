package repository

import (
	"context"

	"ordenes_campo/internal/domain/entities"
	"ordenes_campo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultReconciliationsTableName = "material_reconciliations"
	reconciliationsOrderIDIndex     = "order_id-index"
)

type materialReconciliationItem struct {
	ID            string `dynamodbav:"id"`
	OrderID       int64  `dynamodbav:"order_id"`
	LineID        int64  `dynamodbav:"line_id"`
	MaterialID    int64  `dynamodbav:"material_id"`
	MaterialCode  string `dynamodbav:"material_code"`
	MaterialName  string `dynamodbav:"material_name"`
	UnitOfMeasure string `dynamodbav:"unit_of_measure"`
	FromQuantity  int    `dynamodbav:"from_quantity"`
	ToQuantity    int    `dynamodbav:"to_quantity"`
	Step          string `dynamodbav:"step"`
	Outcome       string `dynamodbav:"outcome"`
	Message       string `dynamodbav:"message"`
	Actor         string `dynamodbav:"actor"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// MaterialReconciliationDynamoRepository stores the log of quantity-change sagas.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id number, SK: created_at string)
type MaterialReconciliationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReconciliationRepository = (*MaterialReconciliationDynamoRepository)(nil)

func NewMaterialReconciliationDynamoRepository(ddb *dynamodb.Client, tableName string) *MaterialReconciliationDynamoRepository {
	return &MaterialReconciliationDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultReconciliationsTableName),
	}
}

func (r *MaterialReconciliationDynamoRepository) Save(ctx context.Context, rec entities.MaterialReconciliation) error {
	av, err := attributevalue.MarshalMap(toMaterialReconciliationItem(rec))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *MaterialReconciliationDynamoRepository) ListByOrderID(ctx context.Context, orderID int64) ([]entities.MaterialReconciliation, error) {
	values, err := attributevalue.MarshalMap(map[string]int64{":order_id": orderID})
	if err != nil {
		return nil, err
	}

	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(reconciliationsOrderIDIndex),
		KeyConditionExpression:    aws.String("#order_id = :order_id"),
		ExpressionAttributeNames:  map[string]string{"#order_id": "order_id"},
		ExpressionAttributeValues: values,
		ScanIndexForward:          aws.Bool(false),
	})

	var out []entities.MaterialReconciliation
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []materialReconciliationItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromMaterialReconciliationItem(it))
		}
	}
	return out, nil
}

func toMaterialReconciliationItem(r entities.MaterialReconciliation) materialReconciliationItem {
	return materialReconciliationItem{
		ID:            r.ID,
		OrderID:       r.OrderID,
		LineID:        r.LineID,
		MaterialID:    r.MaterialID,
		MaterialCode:  r.MaterialCode,
		MaterialName:  r.MaterialName,
		UnitOfMeasure: r.UnitOfMeasure,
		FromQuantity:  r.FromQuantity,
		ToQuantity:    r.ToQuantity,
		Step:          string(r.Step),
		Outcome:       string(r.Outcome),
		Message:       r.Message,
		Actor:         r.Actor,
		CreatedAt:     formatTime(r.CreatedAt),
		UpdatedAt:     formatTime(r.UpdatedAt),
	}
}

func fromMaterialReconciliationItem(it materialReconciliationItem) entities.MaterialReconciliation {
	return entities.MaterialReconciliation{
		ID:            it.ID,
		OrderID:       it.OrderID,
		LineID:        it.LineID,
		MaterialID:    it.MaterialID,
		MaterialCode:  it.MaterialCode,
		MaterialName:  it.MaterialName,
		UnitOfMeasure: it.UnitOfMeasure,
		FromQuantity:  it.FromQuantity,
		ToQuantity:    it.ToQuantity,
		Step:          entities.ReconciliationStep(it.Step),
		Outcome:       entities.ReconciliationOutcome(it.Outcome),
		Message:       it.Message,
		Actor:         it.Actor,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
