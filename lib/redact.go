package lib

import (
	"log/slog"

	"github.com/m-mizutani/masq"
)

// fields holding credential material, matched against slog keys and
// struct field names at any depth
var redactFields = []string{
	"authorizationToken",
	"AuthorizationToken",
	"authorization",
	"Authorization",
	"token",
	"Token",
	"tokens",
	"Tokens",
	"AUTH_TOKENS",
}

func RedactOptions() []masq.Option {
	var opts []masq.Option
	for _, name := range redactFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts, masq.WithFieldPrefix("secret"))
	return opts
}

func RedactAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(RedactOptions(), opts...)...)
}
