package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/termsweep/util/collections"
)

// NeighborGetter lists the coordinates adjacent to a coordinate
type NeighborGetter func(Coord) []Coord

// Visitor handles a single coordinate, returning whether the fill should
// spread to its neighbors
type Visitor func(Coord) bool

// flood visits start and then, breadth-first, every coordinate reachable
// through visits that returned true. Each coordinate is visited at most once.
func flood(start Coord, visit Visitor, getNeighbors NeighborGetter) int {
	visited := make(collections.Set[Coord])
	var visitQueue deque.Deque[Coord]

	enqueue := func(coord Coord) {
		// Don't visit, if already visited
		if visited.Contains(coord) {
			return
		}
		visited.Add(coord)
		visitQueue.PushBack(coord)
	}

	enqueue(start)
	for visitQueue.Len() > 0 {
		coord := visitQueue.PopFront()
		if !visit(coord) {
			continue
		}
		for _, neighbor := range getNeighbors(coord) {
			enqueue(neighbor)
		}
	}

	return visited.Len()
}
