package cliquotes

import (
	"fmt"

	"github.com/alexflint/go-arg"
	"github.com/kodesoul/motivation/lib"
	"github.com/sethvargo/go-password/password"
)

func init() {
	lib.Commands["quotes-token-new"] = quotesTokenNew
	lib.Args["quotes-token-new"] = quotesTokenNewArgs{}
}

type quotesTokenNewArgs struct {
	Length int `arg:"-l,--length" default:"32"`
}

func (quotesTokenNewArgs) Description() string {
	return "\nmint a random token to append to AUTH_TOKENS\n"
}

func quotesTokenNew() {
	var args quotesTokenNewArgs
	arg.MustParse(&args)
	token, err := newToken(args.Length)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	fmt.Println(token)
}

// newToken avoids symbols so tokens survive a comma separated env var and
// an Authorization header unquoted.
func newToken(length int) (string, error) {
	digits := length / 4
	return password.Generate(length, digits, 0, false, true)
}
