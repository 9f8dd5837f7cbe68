package avltree

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for tree operations.
var (
	// ErrKeyNotFound indicates Remove or Find referenced an absent key.
	ErrKeyNotFound = errors.New("avltree: key not found")

	// ErrDuplicateKey indicates Insert saw an already-present key.
	ErrDuplicateKey = errors.New("avltree: duplicate key")
)

// Pair is a key/payload element for bulk construction.
type Pair[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

// node is one tree vertex. height is 1 for a leaf.
type node[K constraints.Ordered, V any] struct {
	key         K
	val         V
	left, right *node[K, V]
	height      int
}

// Tree is a self-balancing binary search tree. The zero value is not
// usable; construct with New or NewFromSlice.
type Tree[K constraints.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// New returns an empty tree.
func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// NewFromSlice builds a balanced tree holding every pair in elems.
// The input is sorted by key first, then inserted midpoint-first so the
// result is balanced without any rotation work.
// Returns ErrDuplicateKey if two pairs share a key.
// Complexity: O(n log n) time, O(n) space.
func NewFromSlice[K constraints.Ordered, V any](elems []Pair[K, V]) (*Tree[K, V], error) {
	sorted := make([]Pair[K, V], len(elems))
	copy(sorted, elems)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	// Adjacent equal keys violate uniqueness.
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Key == sorted[i-1].Key {
			return nil, fmt.Errorf("key %v: %w", sorted[i].Key, ErrDuplicateKey)
		}
	}

	t := New[K, V]()
	t.root = buildBalanced(sorted)
	t.size = len(sorted)

	return t, nil
}

// buildBalanced inserts the midpoint of the sorted span as the subtree root
// and recurses into both halves, yielding minimal height directly.
func buildBalanced[K constraints.Ordered, V any](sorted []Pair[K, V]) *node[K, V] {
	if len(sorted) == 0 {
		return nil
	}
	mid := len(sorted) / 2
	n := &node[K, V]{key: sorted[mid].Key, val: sorted[mid].Value}
	n.left = buildBalanced(sorted[:mid])
	n.right = buildBalanced(sorted[mid+1:])
	n.height = 1 + max(height(n.left), height(n.right))

	return n
}

// Len reports the number of stored keys. Complexity: O(1).
func (t *Tree[K, V]) Len() int { return t.size }

// Height reports the tree height (0 for an empty tree). Complexity: O(1).
func (t *Tree[K, V]) Height() int { return height(t.root) }

// Insert stores val under key. Returns ErrDuplicateKey if key is present.
// Complexity: O(log n).
func (t *Tree[K, V]) Insert(key K, val V) error {
	root, err := insert(t.root, key, val)
	if err != nil {
		return err
	}
	t.root = root
	t.size++

	return nil
}

// Find returns the payload stored under key, or ErrKeyNotFound.
// Complexity: O(log n).
func (t *Tree[K, V]) Find(key K) (V, error) {
	cur := t.root
	for cur != nil {
		switch {
		case key < cur.key:
			cur = cur.left
		case key > cur.key:
			cur = cur.right
		default:
			return cur.val, nil
		}
	}

	var zero V
	return zero, fmt.Errorf("find %v: %w", key, ErrKeyNotFound)
}

// Remove deletes key and returns its payload, or ErrKeyNotFound.
// Complexity: O(log n).
func (t *Tree[K, V]) Remove(key K) (V, error) {
	root, removed, err := remove(t.root, key)
	if err != nil {
		var zero V
		return zero, fmt.Errorf("remove %v: %w", key, err)
	}
	t.root = root
	t.size--

	return removed, nil
}

// Min returns the smallest key and its payload; ok is false on an empty tree.
// Complexity: O(log n).
func (t *Tree[K, V]) Min() (K, V, bool) {
	if t.root == nil {
		var zk K
		var zv V
		return zk, zv, false
	}
	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}

	return cur.key, cur.val, true
}

// Max returns the greatest key and its payload; ok is false on an empty tree.
// Complexity: O(log n).
func (t *Tree[K, V]) Max() (K, V, bool) {
	if t.root == nil {
		var zk K
		var zv V
		return zk, zv, false
	}
	cur := t.root
	for cur.right != nil {
		cur = cur.right
	}

	return cur.key, cur.val, true
}

// InOrder walks the tree in ascending key order, calling fn for each pair.
// Returning false from fn stops the walk early.
// The tree must not be mutated during the walk.
// Complexity: O(n).
func (t *Tree[K, V]) InOrder(fn func(key K, val V) bool) {
	inorder(t.root, fn)
}

func inorder[K constraints.Ordered, V any](n *node[K, V], fn func(K, V) bool) bool {
	if n == nil {
		return true
	}
	if !inorder(n.left, fn) {
		return false
	}
	if !fn(n.key, n.val) {
		return false
	}

	return inorder(n.right, fn)
}

// ---- internal AVL machinery ----

func height[K constraints.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	return n.height
}

// balance reports height(left) − height(right) for n.
func balance[K constraints.Ordered, V any](n *node[K, V]) int {
	return height(n.left) - height(n.right)
}

func refresh[K constraints.Ordered, V any](n *node[K, V]) {
	n.height = 1 + max(height(n.left), height(n.right))
}

// rotateRight lifts n.left over n. n.left must be non-nil.
func rotateRight[K constraints.Ordered, V any](n *node[K, V]) *node[K, V] {
	l := n.left
	n.left = l.right
	l.right = n
	refresh(n)
	refresh(l)

	return l
}

// rotateLeft lifts n.right over n. n.right must be non-nil.
func rotateLeft[K constraints.Ordered, V any](n *node[K, V]) *node[K, V] {
	r := n.right
	n.right = r.left
	r.left = n
	refresh(n)
	refresh(r)

	return r
}

// rebalance restores the AVL invariant at n after one insert or remove
// below it, using at most two rotations.
func rebalance[K constraints.Ordered, V any](n *node[K, V]) *node[K, V] {
	refresh(n)
	switch b := balance(n); {
	case b > 1:
		if balance(n.left) < 0 {
			n.left = rotateLeft(n.left) // left-right case
		}
		return rotateRight(n)
	case b < -1:
		if balance(n.right) > 0 {
			n.right = rotateRight(n.right) // right-left case
		}
		return rotateLeft(n)
	default:
		return n
	}
}

func insert[K constraints.Ordered, V any](n *node[K, V], key K, val V) (*node[K, V], error) {
	if n == nil {
		return &node[K, V]{key: key, val: val, height: 1}, nil
	}

	var err error
	switch {
	case key < n.key:
		if n.left, err = insert(n.left, key, val); err != nil {
			return n, err
		}
	case key > n.key:
		if n.right, err = insert(n.right, key, val); err != nil {
			return n, err
		}
	default:
		return n, fmt.Errorf("insert %v: %w", key, ErrDuplicateKey)
	}

	return rebalance(n), nil
}

func remove[K constraints.Ordered, V any](n *node[K, V], key K) (*node[K, V], V, error) {
	if n == nil {
		var zero V
		return nil, zero, ErrKeyNotFound
	}

	var (
		removed V
		err     error
	)
	switch {
	case key < n.key:
		if n.left, removed, err = remove(n.left, key); err != nil {
			return n, removed, err
		}
	case key > n.key:
		if n.right, removed, err = remove(n.right, key); err != nil {
			return n, removed, err
		}
	default:
		removed = n.val
		switch {
		case n.left == nil:
			return n.right, removed, nil
		case n.right == nil:
			return n.left, removed, nil
		default:
			// Two children: replace with in-order successor, then delete
			// the successor from the right subtree.
			succ := n.right
			for succ.left != nil {
				succ = succ.left
			}
			n.key, n.val = succ.key, succ.val
			if n.right, _, err = remove(n.right, succ.key); err != nil {
				return n, removed, err
			}
		}
	}

	return rebalance(n), removed, nil
}
