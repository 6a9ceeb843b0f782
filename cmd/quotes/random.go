package cliquotes

import (
	"context"
	"fmt"

	"github.com/alexflint/go-arg"
	"github.com/aws/aws-lambda-go/events"
	"github.com/kodesoul/motivation/lib"
	"github.com/kodesoul/motivation/quotes"
)

func init() {
	lib.Commands["quotes-random"] = quotesRandom
	lib.Args["quotes-random"] = quotesRandomArgs{}
}

type quotesRandomArgs struct {
}

func (quotesRandomArgs) Description() string {
	return "\nprint the body the reader lambda would return\n"
}

func quotesRandom() {
	var args quotesRandomArgs
	arg.MustParse(&args)
	ctx := context.Background()
	reader := quotes.NewReader(newStore(loadConfig()))
	out, err := reader.Handle(ctx, events.APIGatewayProxyRequest{})
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	fmt.Println(out.Body)
}
