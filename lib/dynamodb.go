package lib

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var dynamoDBClient *dynamodb.Client
var dynamoDBClientLock sync.Mutex

func DynamoDBClient() *dynamodb.Client {
	dynamoDBClientLock.Lock()
	defer dynamoDBClientLock.Unlock()
	if dynamoDBClient == nil {
		dynamoDBClient = dynamodb.NewFromConfig(*Session())
	}
	return dynamoDBClient
}

// DynamoDBTableAPI is the subset of the dynamodb client used to manage tables.
type DynamoDBTableAPI interface {
	DescribeTable(ctx context.Context, input *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, input *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DeleteTable(ctx context.Context, input *dynamodb.DeleteTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteTableOutput, error)
}

func dynamoDBTableAttrShortcut(s string) string {
	s2, ok := map[string]string{
		"read":   "ProvisionedThroughput.ReadCapacityUnits",
		"write":  "ProvisionedThroughput.WriteCapacityUnits",
		"stream": "StreamSpecification.StreamViewType",
	}[s]
	if ok {
		return s2
	}
	return s
}

// DynamoDBEnsureInput builds a CreateTableInput from keys like "id:s:hash"
// and attrs like "read=5", "stream=new_image" or "Tags.0.Key=env".
func DynamoDBEnsureInput(name string, keys []string, attrs []string) (*dynamodb.CreateTableInput, error) {
	input := &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: ddbtypes.BillingModePayPerRequest,
	}

	for _, key := range keys {
		attrName, attrType, keyType, err := SplitTwice(key, ":")
		if err != nil {
			Logger.Println("error:", err)
			return nil, err
		}
		attrType = strings.ToUpper(attrType)
		keyType = strings.ToUpper(keyType)
		if !Contains([]string{"S", "N", "B"}, attrType) {
			err := fmt.Errorf("unknown attribute type: %s", key)
			Logger.Println("error:", err)
			return nil, err
		}
		if !Contains([]string{"HASH", "RANGE"}, keyType) {
			err := fmt.Errorf("unknown key type: %s", key)
			Logger.Println("error:", err)
			return nil, err
		}
		input.KeySchema = append(input.KeySchema, ddbtypes.KeySchemaElement{
			AttributeName: aws.String(attrName),
			KeyType:       ddbtypes.KeyType(keyType),
		})
		input.AttributeDefinitions = append(input.AttributeDefinitions, ddbtypes.AttributeDefinition{
			AttributeName: aws.String(attrName),
			AttributeType: ddbtypes.ScalarAttributeType(attrType),
		})
	}
	if len(input.KeySchema) == 0 {
		err := fmt.Errorf("at least one key is required for table: %s", name)
		Logger.Println("error:", err)
		return nil, err
	}

	for _, line := range attrs {
		attr, value, err := SplitOnce(line, "=")
		if err != nil {
			Logger.Println("error:", err)
			return nil, err
		}
		attr = dynamoDBTableAttrShortcut(attr)
		head, tail, err := SplitOnce(attr, ".")
		if err != nil {
			Logger.Println("error:", err)
			return nil, err
		}

		switch head {

		case "ProvisionedThroughput":
			units, err := strconv.Atoi(value)
			if err != nil {
				Logger.Println("error:", err)
				return nil, err
			}
			if input.ProvisionedThroughput == nil {
				input.ProvisionedThroughput = &ddbtypes.ProvisionedThroughput{}
			}
			input.BillingMode = ddbtypes.BillingModeProvisioned
			switch tail {
			case "ReadCapacityUnits":
				input.ProvisionedThroughput.ReadCapacityUnits = aws.Int64(int64(units))
			case "WriteCapacityUnits":
				input.ProvisionedThroughput.WriteCapacityUnits = aws.Int64(int64(units))
			default:
				err := fmt.Errorf("unknown attr: %s", line)
				Logger.Println("error:", err)
				return nil, err
			}

		case "StreamSpecification":
			switch tail {
			case "StreamViewType":
				input.StreamSpecification = &ddbtypes.StreamSpecification{
					StreamEnabled:  aws.Bool(true),
					StreamViewType: ddbtypes.StreamViewType(strings.ToUpper(value)),
				}
			default:
				err := fmt.Errorf("unknown attr: %s", line)
				Logger.Println("error:", err)
				return nil, err
			}

		case "Tags":
			head, tail, err := SplitOnce(tail, ".")
			if err != nil {
				Logger.Println("error:", err)
				return nil, err
			}
			i, err := strconv.Atoi(head)
			if err != nil {
				Logger.Println("error:", err)
				return nil, err
			}
			switch len(input.Tags) {
			case i:
				input.Tags = append(input.Tags, ddbtypes.Tag{})
			case i + 1:
			default:
				err := fmt.Errorf("attrs with indices must be in ascending order: %s", line)
				Logger.Println("error:", err)
				return nil, err
			}
			switch tail {
			case "Key":
				input.Tags[i].Key = aws.String(value)
			case "Value":
				input.Tags[i].Value = aws.String(value)
			default:
				err := fmt.Errorf("unknown attr: %s", line)
				Logger.Println("error:", err)
				return nil, err
			}

		default:
			err := fmt.Errorf("unknown attr: %s", line)
			Logger.Println("error:", err)
			return nil, err

		}
	}

	if input.ProvisionedThroughput != nil && (input.ProvisionedThroughput.ReadCapacityUnits == nil || input.ProvisionedThroughput.WriteCapacityUnits == nil) {
		err := fmt.Errorf("provisioned throughput needs both read and write for table: %s", name)
		Logger.Println("error:", err)
		return nil, err
	}

	return input, nil
}

func dynamoDBDescribe(ctx context.Context, api DynamoDBTableAPI, name string) (*ddbtypes.TableDescription, error) {
	out, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(name),
	})
	if err != nil {
		var notFound *ddbtypes.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, err
	}
	return out.Table, nil
}

// DynamoDBEnsureTable creates the table when missing, then waits for it to
// become active. An existing table is left as is.
func DynamoDBEnsureTable(ctx context.Context, api DynamoDBTableAPI, input *dynamodb.CreateTableInput, preview bool) error {
	name := *input.TableName
	table, err := dynamoDBDescribe(ctx, api, name)
	if err != nil {
		Logger.Println("error:", err)
		return err
	}
	if table == nil {
		if !preview {
			_, err := api.CreateTable(ctx, input)
			if err != nil {
				Logger.Println("error:", err)
				return err
			}
		}
		Logger.Println(PreviewString(preview)+"created table:", name)
		if preview {
			return nil
		}
	}
	return DynamoDBWaitActive(ctx, api, name)
}

func DynamoDBWaitActive(ctx context.Context, api DynamoDBTableAPI, name string) error {
	err := Retry(ctx, func() error {
		table, err := dynamoDBDescribe(ctx, api, name)
		if err != nil {
			return err
		}
		if table == nil {
			return fmt.Errorf("table not found: %s", name)
		}
		if table.TableStatus != ddbtypes.TableStatusActive {
			return fmt.Errorf("table %s is %s", name, table.TableStatus)
		}
		return nil
	})
	if err != nil {
		Logger.Println("error:", err)
		return err
	}
	return nil
}

func DynamoDBDeleteTable(ctx context.Context, api DynamoDBTableAPI, name string, preview bool) error {
	table, err := dynamoDBDescribe(ctx, api, name)
	if err != nil {
		Logger.Println("error:", err)
		return err
	}
	if table == nil {
		return nil
	}
	if !preview {
		_, err := api.DeleteTable(ctx, &dynamodb.DeleteTableInput{
			TableName: aws.String(name),
		})
		if err != nil {
			Logger.Println("error:", err)
			return err
		}
	}
	Logger.Println(PreviewString(preview)+"deleted table:", name)
	return nil
}
