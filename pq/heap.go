// SPDX-License-Identifier: MIT

package pq

import (
	"container/heap"
	"errors"
)

// ErrEmptyQueue is returned by ExtractMin and Peek on an empty heap.
var ErrEmptyQueue = errors.New("pq: queue is empty")

// Item is a single frontier entry: a point ID and its tentative distance.
type Item struct {
	ID   int
	Dist float64
}

// MinHeap is a binary min-heap of Items ordered by Dist.
// The zero value is an empty heap ready for use.
type MinHeap struct {
	items itemHeap
}

// New returns an empty heap with room for capacity items.
func New(capacity int) *MinHeap {
	if capacity < 0 {
		capacity = 0
	}

	return &MinHeap{items: make(itemHeap, 0, capacity)}
}

// Len returns the number of items, stale duplicates included.
func (h *MinHeap) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no items.
func (h *MinHeap) IsEmpty() bool { return len(h.items) == 0 }

// Insert appends it and sifts it up while it is strictly smaller than its parent.
func (h *MinHeap) Insert(it Item) {
	heap.Push(&h.items, it)
}

// Peek returns the minimum item without removing it.
func (h *MinHeap) Peek() (Item, error) {
	if len(h.items) == 0 {
		return Item{}, ErrEmptyQueue
	}

	return h.items[0], nil
}

// ExtractMin removes and returns the item with the smallest Dist.
// The last item is moved to the root and sifted down towards the smaller
// child while that child is strictly smaller.
func (h *MinHeap) ExtractMin() (Item, error) {
	if len(h.items) == 0 {
		return Item{}, ErrEmptyQueue
	}

	return heap.Pop(&h.items).(Item), nil
}

// itemHeap implements heap.Interface ordered by Dist ascending.
// Less is strict, so equal distances never displace one another.
type itemHeap []Item

func (q itemHeap) Len() int           { return len(q) }
func (q itemHeap) Less(i, j int) bool { return q[i].Dist < q[j].Dist }
func (q itemHeap) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

// Push is called by heap.Push; x must be an Item.
func (q *itemHeap) Push(x any) { *q = append(*q, x.(Item)) }

// Pop is called by heap.Pop after the minimum was swapped to the end.
func (q *itemHeap) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]

	return it
}
