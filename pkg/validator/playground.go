package validator

import (
	"sync"

	playground "github.com/go-playground/validator/v10"
)

var (
	engine     *playground.Validate
	engineOnce sync.Once
)

// tagEngine returns the shared go-playground validator used for format tags.
// The instance caches tag parsing and is safe for concurrent use.
func tagEngine() *playground.Validate {
	engineOnce.Do(func() {
		engine = playground.New(playground.WithRequiredStructEnabled())
	})
	return engine
}

// satisfies reports whether value passes the given go-playground tag expression.
func satisfies(value any, tag string) bool {
	return tagEngine().Var(value, tag) == nil
}
