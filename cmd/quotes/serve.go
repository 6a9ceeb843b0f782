package cliquotes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/kodesoul/motivation/authorizer"
	"github.com/kodesoul/motivation/lib"
	"github.com/kodesoul/motivation/quotes"
	"github.com/kodesoul/motivation/server"
)

func init() {
	lib.Commands["quotes-serve"] = quotesServe
	lib.Args["quotes-serve"] = quotesServeArgs{}
}

type quotesServeArgs struct {
	Addr string `arg:"-a,--addr" default:"localhost:8080"`
}

func (quotesServeArgs) Description() string {
	return `

serve the three lambdas over http for local use

>> motivation quotes-serve
>> curl -H 'Authorization: magic-token' localhost:8080/quote

`
}

func quotesServe() {
	var args quotesServeArgs
	arg.MustParse(&args)
	cfg := loadConfig()
	auth, err := authorizer.New(cfg.Auth.Tokens)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	srv := &http.Server{
		Addr:              args.Addr,
		Handler:           server.NewRouter(auth, newGenerator(cfg), quotes.NewReader(newStore(cfg))),
		ReadHeaderTimeout: 10 * time.Second,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()
	lib.Logger.Event("serving", "addr", args.Addr, "table", cfg.Table)
	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		lib.Logger.Fatal("error: ", err)
	}
}
