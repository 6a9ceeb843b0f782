package lib

import (
	"context"
	"reflect"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestSplitOnce(t *testing.T) {
	type test struct {
		input string
		head  string
		tail  string
		err   bool
	}
	tests := []test{
		{"a", "", "", true},
		{"a.b", "a", "b", false},
		{"a.b.c", "a", "b.c", false},
	}
	for _, test := range tests {
		head, tail, err := SplitOnce(test.input, ".")
		if test.err {
			if err == nil {
				t.Errorf("\nexpected error")
				return
			}
			continue
		}
		if head != test.head {
			t.Errorf("\ngot:\n%s\nwant:\n%s\n", head, test.head)
			return
		}
		if tail != test.tail {
			t.Errorf("\ngot:\n%s\nwant:\n%s\n", tail, test.tail)
			return
		}
	}
}

func TestDynamoDBEnsureInput(t *testing.T) {
	type test struct {
		name  string
		keys  []string
		attrs []string
		input *dynamodb.CreateTableInput
		err   bool
	}
	tests := []test{

		{
			"MotivationalQuotes",
			[]string{"id:s:hash"},
			[]string{},
			&dynamodb.CreateTableInput{
				TableName:   aws.String("MotivationalQuotes"),
				BillingMode: ddbtypes.BillingModePayPerRequest,
				AttributeDefinitions: []ddbtypes.AttributeDefinition{
					{AttributeName: aws.String("id"), AttributeType: ddbtypes.ScalarAttributeTypeS},
				},
				KeySchema: []ddbtypes.KeySchemaElement{
					{AttributeName: aws.String("id"), KeyType: ddbtypes.KeyTypeHash},
				},
			},
			false,
		},

		{
			"table",
			[]string{"id:s:hash", "date:s:range"},
			[]string{"read=5", "write=10", "stream=new_image", "Tags.0.Key=team", "Tags.0.Value=devops"},
			&dynamodb.CreateTableInput{
				TableName:   aws.String("table"),
				BillingMode: ddbtypes.BillingModeProvisioned,
				AttributeDefinitions: []ddbtypes.AttributeDefinition{
					{AttributeName: aws.String("id"), AttributeType: ddbtypes.ScalarAttributeTypeS},
					{AttributeName: aws.String("date"), AttributeType: ddbtypes.ScalarAttributeTypeS},
				},
				KeySchema: []ddbtypes.KeySchemaElement{
					{AttributeName: aws.String("id"), KeyType: ddbtypes.KeyTypeHash},
					{AttributeName: aws.String("date"), KeyType: ddbtypes.KeyTypeRange},
				},
				ProvisionedThroughput: &ddbtypes.ProvisionedThroughput{
					ReadCapacityUnits:  aws.Int64(5),
					WriteCapacityUnits: aws.Int64(10),
				},
				StreamSpecification: &ddbtypes.StreamSpecification{
					StreamEnabled:  aws.Bool(true),
					StreamViewType: ddbtypes.StreamViewTypeNewImage,
				},
				Tags: []ddbtypes.Tag{
					{Key: aws.String("team"), Value: aws.String("devops")},
				},
			},
			false,
		},

		{"table", []string{}, []string{}, nil, true},
		{"table", []string{"id:x:hash"}, []string{}, nil, true},
		{"table", []string{"id:s:sort"}, []string{}, nil, true},
		{"table", []string{"id:s:hash"}, []string{"read=5"}, nil, true},
		{"table", []string{"id:s:hash"}, []string{"read=five", "write=5"}, nil, true},
		{"table", []string{"id:s:hash"}, []string{"Tags.1.Key=a"}, nil, true},
		{"table", []string{"id:s:hash"}, []string{"BillingMode.x=PROVISIONED"}, nil, true},
	}
	for _, test := range tests {
		input, err := DynamoDBEnsureInput(test.name, test.keys, test.attrs)
		if test.err {
			if err == nil {
				t.Errorf("\nexpected error for keys=%v attrs=%v", test.keys, test.attrs)
			}
			continue
		}
		if err != nil {
			t.Errorf("\nunexpected error: %s", err)
			continue
		}
		if !reflect.DeepEqual(input, test.input) {
			t.Errorf("\ngot:\n%#v\nwant:\n%#v\n", input, test.input)
		}
	}
}

type fakeTableAPI struct {
	statuses []ddbtypes.TableStatus
	describe int
	created  *dynamodb.CreateTableInput
	deleted  string
}

func (f *fakeTableAPI) DescribeTable(_ context.Context, input *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if len(f.statuses) == 0 {
		return nil, &ddbtypes.ResourceNotFoundException{Message: aws.String("not found")}
	}
	i := min(f.describe, len(f.statuses)-1)
	f.describe++
	status := f.statuses[i]
	if status == "" {
		return nil, &ddbtypes.ResourceNotFoundException{Message: aws.String("not found")}
	}
	return &dynamodb.DescribeTableOutput{Table: &ddbtypes.TableDescription{
		TableName:   input.TableName,
		TableStatus: status,
	}}, nil
}

func (f *fakeTableAPI) CreateTable(_ context.Context, input *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.created = input
	return &dynamodb.CreateTableOutput{}, nil
}

func (f *fakeTableAPI) DeleteTable(_ context.Context, input *dynamodb.DeleteTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteTableOutput, error) {
	f.deleted = *input.TableName
	return &dynamodb.DeleteTableOutput{}, nil
}

func TestDynamoDBEnsureTableCreatesAndWaits(t *testing.T) {
	api := &fakeTableAPI{statuses: []ddbtypes.TableStatus{"", ddbtypes.TableStatusCreating, ddbtypes.TableStatusActive}}
	input, err := DynamoDBEnsureInput("quotes", []string{"id:s:hash"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	err = DynamoDBEnsureTable(context.Background(), api, input, false)
	if err != nil {
		t.Fatal(err)
	}
	if api.created != input {
		t.Errorf("expected CreateTable with input")
	}
	if api.describe != 3 {
		t.Errorf("got %d describes, want 3", api.describe)
	}
}

func TestDynamoDBEnsureTableExisting(t *testing.T) {
	api := &fakeTableAPI{statuses: []ddbtypes.TableStatus{ddbtypes.TableStatusActive}}
	input, err := DynamoDBEnsureInput("quotes", []string{"id:s:hash"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	err = DynamoDBEnsureTable(context.Background(), api, input, false)
	if err != nil {
		t.Fatal(err)
	}
	if api.created != nil {
		t.Errorf("expected no CreateTable for existing table")
	}
}

func TestDynamoDBEnsureTablePreview(t *testing.T) {
	api := &fakeTableAPI{}
	input, err := DynamoDBEnsureInput("quotes", []string{"id:s:hash"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	err = DynamoDBEnsureTable(context.Background(), api, input, true)
	if err != nil {
		t.Fatal(err)
	}
	if api.created != nil {
		t.Errorf("preview must not create")
	}
}

func TestDynamoDBDeleteTable(t *testing.T) {
	api := &fakeTableAPI{statuses: []ddbtypes.TableStatus{ddbtypes.TableStatusActive}}
	err := DynamoDBDeleteTable(context.Background(), api, "quotes", false)
	if err != nil {
		t.Fatal(err)
	}
	if api.deleted != "quotes" {
		t.Errorf("got deleted %q", api.deleted)
	}
	missing := &fakeTableAPI{}
	err = DynamoDBDeleteTable(context.Background(), missing, "quotes", false)
	if err != nil {
		t.Fatal(err)
	}
	if missing.deleted != "" {
		t.Errorf("missing table must not be deleted")
	}
}
