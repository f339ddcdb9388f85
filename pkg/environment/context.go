package environment

import (
	"context"
	"strings"
)

// Environment names the deployment a run belongs to.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse normalises an environment name. Short aliases (dev, stage, prod) map
// to their full names; an empty name is Development. Other names are kept.
func Parse(name string) Environment {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dev", string(Development):
		return Development
	case "stage", string(Staging):
		return Staging
	case "prod", string(Production):
		return Production
	}
	return Environment(strings.TrimSpace(name))
}

func (e Environment) String() string {
	return string(e)
}

type contextKey struct{}

// WithContext returns a copy of ctx carrying env.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext returns the environment stored in ctx, or "".
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

// IsProduction, IsStaging and IsDevelopment accept aliases ("prod") stored
// in ctx. A context without an environment matches none of them.
func IsProduction(ctx context.Context) bool { return is(ctx, Production) }

func IsStaging(ctx context.Context) bool { return is(ctx, Staging) }

func IsDevelopment(ctx context.Context) bool { return is(ctx, Development) }

func is(ctx context.Context, want Environment) bool {
	env := FromContext(ctx)
	return env != "" && Parse(string(env)) == want
}
