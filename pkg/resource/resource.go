// Package resource provides API transformers that control exactly which
// fields a model exposes over the wire.
//
//	out := resource.Transform(u, userTransformer)
//	list := resource.TransformSlice(all, userTransformer)
package resource

// Map is the output shape of a transformer.
type Map = map[string]interface{}

// Transformer converts one model instance into its wire representation.
type Transformer[T any] func(T) Map

// Transform applies fn to a single model.
func Transform[T any](v T, fn Transformer[T]) Map {
	return fn(v)
}

// TransformSlice applies fn to every element of s.
// Always returns a non-nil slice so empty lists encode as [] not null.
func TransformSlice[T any](s []T, fn Transformer[T]) []Map {
	out := make([]Map, 0, len(s))
	for _, v := range s {
		out = append(out, fn(v))
	}
	return out
}
