package cliquotes

import (
	"encoding/json"
	"fmt"

	"github.com/alexflint/go-arg"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/kodesoul/motivation/lib"
)

func init() {
	lib.Commands["quotes-lambda-check"] = quotesLambdaCheck
	lib.Args["quotes-lambda-check"] = quotesLambdaCheckArgs{}
}

type quotesLambdaCheckArgs struct {
	Paths []string `arg:"positional,required"`
}

func (quotesLambdaCheckArgs) Description() string {
	return `

parse the deployment header of each lambda and print it

>> motivation quotes-lambda-check lambdas/*/main.go

`
}

func quotesLambdaCheck() {
	var args quotesLambdaCheckArgs
	arg.MustParse(&args)
	for _, path := range args.Paths {
		meta, err := lib.LambdaParseFile(path)
		if err != nil {
			lib.Logger.Fatal("error: ", err)
		}
		tables, err := lib.LambdaTables(meta)
		if err != nil {
			lib.Logger.Fatal("error: ", err)
		}
		bytes, err := json.MarshalIndent(meta, "", "    ")
		if err != nil {
			lib.Logger.Fatal("error: ", err)
		}
		fmt.Println(lib.LambdaName(path, meta), string(bytes))
		for _, table := range tables {
			fmt.Println("table:", aws.ToString(table.TableName), table.BillingMode)
		}
	}
}
