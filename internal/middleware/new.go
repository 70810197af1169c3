package middleware

import (
	"stockguard/pkg/log"
)

type Middleware struct {
	l              log.Logger
	requestsPerMin int
}

func New(l log.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:              l,
		requestsPerMin: requestsPerMin,
	}
}
