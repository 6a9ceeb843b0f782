//
// attr: memory 128
// attr: timeout 5
// policy: AWSLambdaBasicExecutionRole

package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/kodesoul/motivation/authorizer"
	"github.com/kodesoul/motivation/lib"
)

func main() {
	cfg, err := lib.LoadConfig()
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	lib.Logger.SetLevel(cfg.Log.Level)
	auth, err := authorizer.New(cfg.Auth.Tokens)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	lambda.Start(auth.Authorize)
}
