// Package avltree implements a generic self-balancing binary search tree
// (AVL rebalancing) keyed by any ordered type.
//
// What:
//
//   - Tree[K, V] stores one payload per unique key in BST order.
//   - Every insert and remove restores the AVL invariant
//     |height(left) − height(right)| ≤ 1 via single or double rotations,
//     so the height stays O(log n) and ordered operations stay cheap.
//   - NewFromSlice builds a balanced tree from an arbitrary pair slice in
//     O(n log n): sort by key, then midpoint-recursive insertion.
//
// Complexity:
//
//   - Insert, Remove, Find:  O(log n).
//   - Min, Max:              O(log n).
//   - InOrder:               O(n).
//   - NewFromSlice:          O(n log n).
//
// Errors:
//
//   - ErrKeyNotFound     Remove or Find missed the key. Removal of an absent
//     key is surfaced, never silently ignored, so callers can distinguish
//     "already taken" from a bug.
//   - ErrDuplicateKey    Insert or NewFromSlice saw an already-present key.
package avltree
