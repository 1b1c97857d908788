// Package pipeline runs an ordered list of request checks, stopping at the
// first one that fails.
//
// A command handler builds its stages as closures over the request and any
// state a stage captures (such as the record loaded by an existence check),
// runs them, and only then performs its write:
//
//	var current *dish.Dish
//	err := pipeline.Run(ctx,
//	    dishExists(repo, id, &current),
//	    pipeline.Check(func() error { return dish.RequireField(dish.FieldName, in.Name) }),
//	)
//	if err != nil {
//	    return nil, err
//	}
package pipeline

import "context"

// Stage performs one check and either returns nil to continue or the error
// that terminates the pipeline.
type Stage func(ctx context.Context) error

// Check adapts a context-free check into a Stage.
func Check(check func() error) Stage {
	return func(context.Context) error {
		return check()
	}
}

// Run executes stages in order and returns the first error.
func Run(ctx context.Context, stages ...Stage) error {
	for _, stage := range stages {
		if err := stage(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Concat joins stage lists, preserving order.
func Concat(groups ...[]Stage) []Stage {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	stages := make([]Stage, 0, n)
	for _, g := range groups {
		stages = append(stages, g...)
	}
	return stages
}
