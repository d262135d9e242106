// Package similarity provides "did you mean" lookups over short tags using
// a BK-tree keyed on edit distance.
package similarity

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// BKTree indexes values by a string key. Lookups return every key within a
// given edit distance of the query.
type BKTree[T any] struct {
	root *bkNode[T]
	size int
}

type bkNode[T any] struct {
	key      string
	value    T
	children map[int]*bkNode[T]
}

// Match is a search hit.
type Match[T any] struct {
	Key      string
	Value    T
	Distance int
}

// NewBKTree creates a new empty BK-tree.
func NewBKTree[T any]() *BKTree[T] {
	return &BKTree[T]{}
}

// Distance is the edit distance used by the tree, counted in runes.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// Insert adds key with its value. Inserting an existing key keeps the
// first value.
func (t *BKTree[T]) Insert(key string, value T) {
	if key == "" {
		return
	}

	node := &bkNode[T]{key: key, value: value, children: make(map[int]*bkNode[T])}
	if t.root == nil {
		t.root = node
		t.size++
		return
	}

	current := t.root
	for {
		dist := Distance(key, current.key)
		if dist == 0 {
			return
		}

		child, exists := current.children[dist]
		if !exists {
			current.children[dist] = node
			t.size++
			return
		}
		current = child
	}
}

// Search finds all keys within maxDistance of query, nearest first. Ties
// are ordered by key.
func (t *BKTree[T]) Search(query string, maxDistance int) []Match[T] {
	if t.root == nil || query == "" {
		return nil
	}

	var matches []Match[T]
	stack := []*bkNode[T]{t.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		dist := Distance(query, node.key)
		if dist <= maxDistance {
			matches = append(matches, Match[T]{Key: node.key, Value: node.value, Distance: dist})
		}

		// Triangle inequality bounds the children worth visiting.
		for childDist, child := range node.children {
			if childDist >= dist-maxDistance && childDist <= dist+maxDistance {
				stack = append(stack, child)
			}
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Key < matches[j].Key
	})
	return matches
}

// Size returns the number of keys in the tree.
func (t *BKTree[T]) Size() int {
	return t.size
}

// Get returns the value stored under key.
func (t *BKTree[T]) Get(key string) (T, bool) {
	matches := t.Search(key, 0)
	if len(matches) == 0 {
		var zero T
		return zero, false
	}
	return matches[0].Value, true
}
