// Package permutation turns a transform that only repositions the elements
// of a slice into a precomputed index template, and then applies that
// template directly. The transform is run exactly once, on the identity
// sequence; every later application is a single O(n) copy.
//
// The convention used throughout is destination[j] = source[template[j]].
package permutation

import (
	"errors"
	"fmt"
)

var (
	ErrNotPermutation = errors.New("transform is not a permutation of positions")
)

// A Template is an index permutation. t[j] is the source index that feeds
// destination index j.
type Template []int

// Identity returns the template that leaves a sequence of the given size alone.
func Identity(size int) Template {
	t := make(Template, size)
	for i := range t {
		t[i] = i
	}
	return t
}

// Extract derives the template induced by transform on sequences of the given
// size. transform must only move elements around; it is applied to the
// identity sequence, and since r[j] = i means "source i landed on j", the
// result already has the executor's shape.
func Extract(size int, transform func([]int) []int) (Template, error) {
	r := transform([]int(Identity(size)))
	if len(r) != size {
		return nil, fmt.Errorf("%w: transform returned %d elements, expected %d",
			ErrNotPermutation, len(r), size)
	}
	seen := make([]bool, size)
	for j, i := range r {
		if i < 0 || i >= size {
			return nil, fmt.Errorf("%w: index %d at position %d out of range",
				ErrNotPermutation, i, j)
		}
		if seen[i] {
			return nil, fmt.Errorf("%w: source index %d used twice", ErrNotPermutation, i)
		}
		seen[i] = true
	}
	t := make(Template, size)
	copy(t, r)
	return t, nil
}

// Size is the length of sequences this template applies to.
func (t Template) Size() int {
	return len(t)
}

// Inverse returns the template that undoes t.
func (t Template) Inverse() Template {
	inv := make(Template, len(t))
	for j, i := range t {
		inv[i] = j
	}
	return inv
}

// Then returns the template equivalent to applying t first and then u.
func (t Template) Then(u Template) Template {
	if len(t) != len(u) {
		panic("permutation: composing templates of different sizes")
	}
	// (t then u)[j] = src[t[u[j]]]
	c := make(Template, len(t))
	for j := range c {
		c[j] = t[u[j]]
	}
	return c
}

// Equal reports whether two templates describe the same permutation.
func (t Template) Equal(u Template) bool {
	if len(t) != len(u) {
		return false
	}
	for i := range t {
		if t[i] != u[i] {
			return false
		}
	}
	return true
}

// ApplyTo writes the permuted src into dst. It does not allocate.
func ApplyTo[T any](dst, src []T, t Template) {
	if len(src) != len(t) || len(dst) != len(t) {
		panic(fmt.Sprintf("permutation: template size %d does not match src %d / dst %d",
			len(t), len(src), len(dst)))
	}
	for j, i := range t {
		dst[j] = src[i]
	}
}

// Apply returns a newly allocated, permuted copy of src.
func Apply[T any](src []T, t Template) []T {
	dst := make([]T, len(src))
	ApplyTo(dst, src, t)
	return dst
}
