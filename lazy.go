package shapecheck

import "sync"

// Lazy defers building a validator until its first run, which lets a schema
// refer to itself:
//
//	var node Validator[map[string]any]
//	node = Object(
//		Field("name", String()),
//		Field("children", Lazy(func() Validator[[]map[string]any] {
//			return Array(node)
//		}).Optional()),
//	)
//
// Each pass through a Lazy counts against [MaxDepth], so cyclic schemas fed
// pathological input fail with the depth message instead of recursing
// forever. The built validator is cached after the first run.
func Lazy[T any](build func() Validator[T]) Validator[T] {
	var (
		once  sync.Once
		inner Validator[T]
	)
	return Validator[T]{
		run: func(value any, depth int) Result[T] {
			if depth >= MaxDepth {
				return Fail[T](depthExceeded)
			}
			once.Do(func() { inner = build() })
			return inner.run(value, depth+1)
		},
		describe: describeNote("recursive"),
	}
}
