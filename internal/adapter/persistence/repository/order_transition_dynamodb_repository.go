package repository

import (
	"context"
	"fmt"

	"ordenes_campo/internal/domain/entities"
	"ordenes_campo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTransitionsTableName = "order_status_transitions"

type orderTransitionItem struct {
	ID        string `dynamodbav:"id"`
	OrderID   int64  `dynamodbav:"order_id"`
	Actor     string `dynamodbav:"actor"`
	Phase     string `dynamodbav:"phase"`
	Status    string `dynamodbav:"status,omitempty"`
	Message   string `dynamodbav:"message,omitempty"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// OrderTransitionDynamoRepository persists the status-change state of each (order, actor).
//
// Table requirements:
//   - PK: id (string, "<order_id>#<actor>")
//
// One item per pair; Save overwrites it.
type OrderTransitionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransitionStateRepository = (*OrderTransitionDynamoRepository)(nil)

func NewOrderTransitionDynamoRepository(ddb *dynamodb.Client, tableName string) *OrderTransitionDynamoRepository {
	return &OrderTransitionDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultTransitionsTableName),
	}
}

func (r *OrderTransitionDynamoRepository) Get(ctx context.Context, orderID int64, actor string) (entities.OrderTransition, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: transitionKey(orderID, actor)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrderTransition{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrderTransition{}, nil
	}

	var it orderTransitionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OrderTransition{}, err
	}
	return fromOrderTransitionItem(it), nil
}

func (r *OrderTransitionDynamoRepository) Save(ctx context.Context, t entities.OrderTransition) error {
	av, err := attributevalue.MarshalMap(toOrderTransitionItem(t))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func transitionKey(orderID int64, actor string) string {
	return fmt.Sprintf("%d#%s", orderID, actor)
}

func toOrderTransitionItem(t entities.OrderTransition) orderTransitionItem {
	it := orderTransitionItem{
		ID:        transitionKey(t.OrderID, t.Actor),
		OrderID:   t.OrderID,
		Actor:     t.Actor,
		UpdatedAt: formatTime(t.UpdatedAt),
	}

	switch s := t.CurrentState().(type) {
	case entities.TransitionConfirmPending:
		it.Status = string(s.Status)
	case entities.TransitionSubmitting:
		it.Status = string(s.Status)
	case entities.TransitionFailed:
		it.Message = s.Message
	case entities.TransitionSucceeded:
		it.Status = string(s.Status)
		it.Message = s.Message
	}
	it.Phase = string(t.CurrentState().Phase())
	return it
}

// fromOrderTransitionItem decodes the stored phase. Unknown phases and items missing the
// field a variant needs decode as Idle.
func fromOrderTransitionItem(it orderTransitionItem) entities.OrderTransition {
	status := entities.OrderStatus(it.Status)

	var state entities.TransitionState = entities.TransitionIdle{}
	switch entities.TransitionPhase(it.Phase) {
	case entities.TransitionPhaseConfirmPending:
		if status.Known() {
			state = entities.TransitionConfirmPending{Status: status}
		}
	case entities.TransitionPhaseSubmitting:
		if status.Known() {
			state = entities.TransitionSubmitting{Status: status}
		}
	case entities.TransitionPhaseFailed:
		state = entities.TransitionFailed{Message: it.Message}
	case entities.TransitionPhaseSucceeded:
		if status.Known() {
			state = entities.TransitionSucceeded{Status: status, Message: it.Message}
		}
	}

	return entities.OrderTransition{
		OrderID:   it.OrderID,
		Actor:     it.Actor,
		State:     state,
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
