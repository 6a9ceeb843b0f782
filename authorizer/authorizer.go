// Package authorizer implements an api gateway token authorizer backed by a
// static allow-list.
package authorizer

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/kodesoul/motivation/lib"
)

const (
	DefaultPrincipalID = "user|kode-soul"
	DefaultRole        = "devops"

	policyVersion = "2012-10-17"
	invokeAction  = "execute-api:Invoke"
)

// ErrUnauthorized is returned for every rejected credential. API Gateway
// answers 401 only when the error message is exactly "Unauthorized".
var ErrUnauthorized = errors.New("Unauthorized")

var ErrNoTokens = errors.New("authorizer needs at least one token")

type Authorizer struct {
	tokens      [][]byte
	principalID string
	role        string
}

type Option func(*Authorizer)

func WithPrincipalID(id string) Option {
	return func(a *Authorizer) {
		a.principalID = id
	}
}

func WithRole(role string) Option {
	return func(a *Authorizer) {
		a.role = role
	}
}

// New copies tokens into the allow-list. Blank entries are dropped.
func New(tokens []string, opts ...Option) (*Authorizer, error) {
	a := &Authorizer{
		principalID: DefaultPrincipalID,
		role:        DefaultRole,
	}
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token != "" {
			a.tokens = append(a.tokens, []byte(token))
		}
	}
	if len(a.tokens) == 0 {
		lib.Logger.Println("error:", ErrNoTokens)
		return nil, ErrNoTokens
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Allowed reports whether token is on the allow-list. Every entry is
// compared in constant time.
func (a *Authorizer) Allowed(token string) bool {
	presented := []byte(token)
	match := 0
	for _, valid := range a.tokens {
		match |= subtle.ConstantTimeCompare(presented, valid)
	}
	return match == 1
}

// Policy is the allow decision for resource.
func (a *Authorizer) Policy(resource string) events.APIGatewayCustomAuthorizerResponse {
	return events.APIGatewayCustomAuthorizerResponse{
		PrincipalID: a.principalID,
		PolicyDocument: events.APIGatewayCustomAuthorizerPolicy{
			Version: policyVersion,
			Statement: []events.IAMPolicyStatement{
				{
					Action:   []string{invokeAction},
					Effect:   "Allow",
					Resource: []string{resource},
				},
			},
		},
		Context: map[string]interface{}{
			"role": a.role,
		},
	}
}

// Authorize is the lambda entrypoint.
func (a *Authorizer) Authorize(_ context.Context, event events.APIGatewayCustomAuthorizerRequest) (events.APIGatewayCustomAuthorizerResponse, error) {
	lib.Logger.Event("event received", "event", event)
	if !a.Allowed(event.AuthorizationToken) {
		lib.Logger.Event("denied", "methodArn", event.MethodArn)
		return events.APIGatewayCustomAuthorizerResponse{}, ErrUnauthorized
	}
	return a.Policy(event.MethodArn), nil
}
