package quotes

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gofrs/uuid"
	"github.com/kodesoul/motivation/lib"
)

type Generator struct {
	model  *Model
	store  *Store
	author string
	now    func() time.Time
	newID  func() (string, error)
}

type GeneratorOption func(*Generator)

func WithAuthor(author string) GeneratorOption {
	return func(g *Generator) {
		if author != "" {
			g.author = author
		}
	}
}

func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

func WithIDs(newID func() (string, error)) GeneratorOption {
	return func(g *Generator) {
		g.newID = newID
	}
}

func newUUID() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func NewGenerator(model *Model, store *Store, opts ...GeneratorOption) *Generator {
	g := &Generator{
		model:  model,
		store:  store,
		author: DefaultAuthor,
		now:    time.Now,
		newID:  newUUID,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate asks the model for one quote and stores it. Every call that
// reaches the model is billed, and a retried call stores a second record.
func (g *Generator) Generate(ctx context.Context) (Record, error) {
	text, err := g.model.Complete(ctx, Prompt)
	if err != nil {
		return Record{}, err
	}
	id, err := g.newID()
	if err != nil {
		lib.Logger.Println("error:", err)
		return Record{}, err
	}
	record := Record{
		ID:     id,
		Quote:  text,
		Author: g.author,
		Date:   FormatDate(g.now()),
	}
	err = g.store.Put(ctx, record)
	if err != nil {
		return Record{}, err
	}
	lib.Logger.Event("stored quote", "id", record.ID, "table", g.store.Table(), "model", g.model.ID())
	return record, nil
}

// Handle is the lambda entrypoint. The event is ignored.
func (g *Generator) Handle(ctx context.Context, _ json.RawMessage) (events.APIGatewayProxyResponse, error) {
	record, err := g.Generate(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return jsonResponse(http.StatusOK, map[string]string{"quote": record.Quote}, nil)
}
