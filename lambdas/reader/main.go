//
// attr: memory 128
// attr: timeout 30
// policy: AWSLambdaBasicExecutionRole
// allow: dynamodb:Scan arn:aws:dynamodb:*:*:table/${DYNAMO_TABLE}
// trigger: api

package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/kodesoul/motivation/lib"
	"github.com/kodesoul/motivation/quotes"
)

func main() {
	cfg, err := lib.LoadConfig()
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	lib.Logger.SetLevel(cfg.Log.Level)
	reader := quotes.NewReader(quotes.NewStore(lib.DynamoDBClient(), cfg.Table))
	lambda.Start(reader.Handle)
}
