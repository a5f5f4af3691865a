// SPDX-License-Identifier: MIT

// Package pq provides the binary min-heap used as the Dijkstra frontier.
//
// The heap stores (ID, Dist) items and always yields the item with the
// smallest Dist first. It has no decrease-key: when a shorter tentative
// distance is found for an ID, the caller simply inserts a new item and
// discards the outdated one when it is popped later (lazy deletion).
//
// Complexity:
//
//   - Insert:     O(log n)
//   - ExtractMin: O(log n)
//   - IsEmpty, Len, Peek: O(1)
//
// Contract for ExtractMin on an empty heap: it returns ErrEmptyQueue and a
// zero Item. Callers that loop on !IsEmpty() never observe the error.
//
// Ordering between items with equal Dist is determined purely by heap
// position and is therefore not stable with respect to insertion order.
//
// The sift operations are those of container/heap: an item moves up only
// while strictly smaller than its parent, and down towards the smaller child
// only while that child is strictly smaller.
//
// A MinHeap is not safe for concurrent use.
package pq
