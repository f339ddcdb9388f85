package environment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldcheck/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := map[string]environment.Environment{
		"":            environment.Development,
		"dev":         environment.Development,
		"Development": environment.Development,
		"stage":       environment.Staging,
		"staging":     environment.Staging,
		" prod ":      environment.Production,
		"production":  environment.Production,
		"ci":          environment.Environment("ci"),
	}
	for in, want := range tests {
		assert.Equal(t, want, environment.Parse(in), in)
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		for _, env := range []environment.Environment{environment.Staging, "custom", ""} {
			ctx := environment.WithContext(context.Background(), env)
			assert.Equal(t, env, environment.FromContext(ctx))
		}
	})

	t.Run("missing value", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, environment.FromContext(context.Background()))
		assert.False(t, environment.IsDevelopment(context.Background()))
	})

	t.Run("latest value wins", func(t *testing.T) {
		t.Parallel()
		ctx := environment.WithContext(context.Background(), environment.Development)
		ctx = environment.WithContext(ctx, environment.Production)
		assert.Equal(t, environment.Production, environment.FromContext(ctx))
	})
}

func TestIs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env                         environment.Environment
		production, staging, devEnv bool
	}{
		{env: environment.Production, production: true},
		{env: "prod", production: true},
		{env: environment.Staging, staging: true},
		{env: "stage", staging: true},
		{env: environment.Development, devEnv: true},
		{env: "dev", devEnv: true},
		{env: "ci"},
	}
	for _, tt := range tests {
		t.Run(string(tt.env), func(t *testing.T) {
			t.Parallel()
			ctx := environment.WithContext(context.Background(), tt.env)
			assert.Equal(t, tt.production, environment.IsProduction(ctx))
			assert.Equal(t, tt.staging, environment.IsStaging(ctx))
			assert.Equal(t, tt.devEnv, environment.IsDevelopment(ctx))
		})
	}
}
