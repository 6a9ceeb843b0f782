// Package server runs the lambdas behind a local http router, the way api
// gateway would: the authorizer gates every route except the cors preflight.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kodesoul/motivation/authorizer"
	"github.com/kodesoul/motivation/lib"
	"github.com/kodesoul/motivation/quotes"
)

const localArn = "arn:aws:execute-api:local:000000000000:quotes/local"

type proxyHandler func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

type decisionKey struct{}

func NewRouter(auth *authorizer.Authorizer, generator *quotes.Generator, reader *quotes.Reader) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Options("/quote", preflight)
	r.Group(func(r chi.Router) {
		r.Use(authorize(auth))
		r.Get("/quote", proxy(reader.Handle))
		r.Post("/quote", proxy(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return generator.Handle(ctx, json.RawMessage(req.Body))
		}))
	})
	return r
}

func preflight(w http.ResponseWriter, _ *http.Request) {
	for k, v := range quotes.CORSHeaders() {
		w.Header().Set(k, v)
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

func authorize(auth *authorizer.Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision, err := auth.Authorize(r.Context(), events.APIGatewayCustomAuthorizerRequest{
				Type:               "TOKEN",
				AuthorizationToken: r.Header.Get("Authorization"),
				MethodArn:          fmt.Sprintf("%s/%s%s", localArn, r.Method, r.URL.Path),
			})
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, err.Error())
				return
			}
			ctx := context.WithValue(r.Context(), decisionKey{}, decision.Context)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func proxy(handler proxyHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		req := events.APIGatewayProxyRequest{
			HTTPMethod:            r.Method,
			Path:                  r.URL.Path,
			Headers:               map[string]string{},
			QueryStringParameters: map[string]string{},
			Body:                  string(body),
			RequestContext: events.APIGatewayProxyRequestContext{
				RequestID: middleware.GetReqID(r.Context()),
			},
		}
		if decision, ok := r.Context().Value(decisionKey{}).(map[string]interface{}); ok {
			req.RequestContext.Authorizer = decision
		}
		for k := range r.Header {
			req.Headers[k] = r.Header.Get(k)
		}
		for k := range r.URL.Query() {
			req.QueryStringParameters[k] = r.URL.Query().Get(k)
		}
		resp, err := handler(r.Context(), req)
		if err != nil {
			lib.Logger.Println("error:", err)
			writeMessage(w, http.StatusBadGateway, "Internal server error")
			return
		}
		for k, v := range resp.Headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = io.WriteString(w, resp.Body)
	}
}
