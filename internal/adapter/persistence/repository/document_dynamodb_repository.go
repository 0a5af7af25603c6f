package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"maintup/internal/domain/entities"
	"maintup/internal/usecase/interfaces"
	"maintup/pkg"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLedgerTableName = "ledger"

type collectionItem struct {
	Name    string `dynamodbav:"name"`
	Payload string `dynamodbav:"payload"`
}

// DocumentDynamoRepository is the alternative store driver: one item per
// collection, keyed by collection name, with the collection's JSON array as
// the payload attribute.
//
// Table requirements:
//   - PK: name (string)
//
// Missing items read as empty collections, so a fresh table behaves like a
// fresh data file.
type DocumentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDocumentRepository = (*DocumentDynamoRepository)(nil)

func NewDocumentDynamoRepository(ddb *dynamodb.Client) *DocumentDynamoRepository {
	return &DocumentDynamoRepository{
		ddb:       ddb,
		tableName: pkg.GetenvDefault("LEDGER_TABLE", defaultLedgerTableName),
	}
}

func (r *DocumentDynamoRepository) Load(ctx context.Context) (entities.RawDocument, error) {
	var doc entities.RawDocument
	for _, name := range entities.Collections {
		payload, err := r.loadCollection(ctx, name)
		if err != nil {
			return entities.RawDocument{}, err
		}
		if payload == "" {
			continue
		}
		var items []map[string]any
		if err := json.Unmarshal([]byte(payload), &items); err != nil {
			return entities.RawDocument{}, fmt.Errorf("parse %s payload: %w", name, err)
		}
		doc.SetCollection(name, items)
	}
	doc.Normalize()
	return doc, nil
}

func (r *DocumentDynamoRepository) Save(ctx context.Context, doc entities.RawDocument) error {
	doc.Normalize()
	for _, name := range entities.Collections {
		items, _ := doc.Collection(name)
		data, err := json.Marshal(items)
		if err != nil {
			return fmt.Errorf("marshal %s payload: %w", name, err)
		}
		av, err := attributevalue.MarshalMap(collectionItem{Name: name, Payload: string(data)})
		if err != nil {
			return fmt.Errorf("marshal %s item: %w", name, err)
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		})
		if err != nil {
			return fmt.Errorf("put %s item: %w", name, err)
		}
	}
	return nil
}

func (r *DocumentDynamoRepository) loadCollection(ctx context.Context, name string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get %s item: %w", name, err)
	}
	if len(out.Item) == 0 {
		return "", nil
	}
	var it collectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", fmt.Errorf("unmarshal %s item: %w", name, err)
	}
	return it.Payload, nil
}
