package test

import (
	"fmt"

	"go.uber.org/mock/gomock"
)

// Match builds a gomock matcher from a typed predicate. Arguments of a
// different type never match.
func Match[T any](predicate func(v T) bool) gomock.Matcher {
	return predicateMatcher[T]{predicate: predicate}
}

type predicateMatcher[T any] struct {
	predicate func(v T) bool
}

func (m predicateMatcher[T]) Matches(val interface{}) bool {
	typed, ok := val.(T)
	if !ok {
		return false
	}
	return m.predicate(typed)
}

func (m predicateMatcher[T]) String() string {
	var zero T
	return fmt.Sprintf("matches predicate over %T", zero)
}
