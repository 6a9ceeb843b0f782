package quotes

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/kodesoul/motivation/lib"
)

// TableAPI is the subset of the dynamodb client the store needs.
type TableAPI interface {
	PutItem(ctx context.Context, input *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, input *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type Store struct {
	api   TableAPI
	table string
}

func NewStore(api TableAPI, table string) *Store {
	return &Store{api: api, table: table}
}

func (s *Store) Table() string {
	return s.table
}

// Put writes the record unconditionally.
func (s *Store) Put(ctx context.Context, record Record) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		lib.Logger.Println("error:", err)
		return err
	}
	_, err = s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		err = serviceError("dynamodb", "PutItem", err)
		lib.Logger.Println("error:", err)
		return err
	}
	return nil
}

// Scan calls fn for every record in the table, one page at a time. A non
// nil error from fn stops the scan and is returned as is.
func (s *Store) Scan(ctx context.Context, fn func(Record) error) error {
	paginator := dynamodb.NewScanPaginator(s.api, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			err = serviceError("dynamodb", "Scan", err)
			lib.Logger.Println("error:", err)
			return err
		}
		var records []Record
		err = attributevalue.UnmarshalListOfMaps(page.Items, &records)
		if err != nil {
			lib.Logger.Println("error:", err)
			return err
		}
		for _, record := range records {
			err = fn(record)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// All reads every record into memory.
func (s *Store) All(ctx context.Context) ([]Record, error) {
	var records []Record
	err := s.Scan(ctx, func(r Record) error {
		records = append(records, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
