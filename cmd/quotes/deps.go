package cliquotes

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kodesoul/motivation/lib"
	"github.com/kodesoul/motivation/quotes"
)

func loadConfig() *lib.Config {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		lib.Logger.Fatal("error: ", err)
	}
	cfg, err := lib.LoadConfig()
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	lib.Logger.SetLevel(cfg.Log.Level)
	return cfg
}

func newStore(cfg *lib.Config) *quotes.Store {
	return quotes.NewStore(lib.DynamoDBClient(), cfg.Table)
}

func newGenerator(cfg *lib.Config) *quotes.Generator {
	return quotes.NewGenerator(
		quotes.NewModel(lib.BedrockClient(), cfg.Model.ID),
		newStore(cfg),
		quotes.WithAuthor(cfg.Author),
	)
}
