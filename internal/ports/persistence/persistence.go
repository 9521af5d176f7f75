package persistence

import "context"

// Persistence то, что журналу анализов нужно от базы
type Persistence interface {
	Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExec(ctx context.Context, query string, arg interface{}) error
}
