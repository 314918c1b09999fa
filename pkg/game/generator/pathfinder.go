package generator

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"dungen/pkg/engine/world"
)

// Sentinel errors returned by FindPath.
var (
	// ErrInvalidCoordinate indicates a start or end cell outside the grid.
	ErrInvalidCoordinate = errors.New("pathfinder: coordinate outside grid")

	// ErrNoPath indicates the search exhausted the frontier or the
	// predecessor chain broke during reconstruction. Neither can happen
	// on a well-formed grid, where every cell is reachable.
	ErrNoPath = errors.New("pathfinder: no path between endpoints")
)

// frontierNode is one queued expansion candidate. seq records insertion
// order and breaks ties on equal f, keeping expansion deterministic.
type frontierNode struct {
	pos world.Point
	f   float64
	seq int
}

// FindPath runs weighted A* from start to end. Step cost is the cost
// field value of the destination cell; the heuristic is the Manhattan
// distance to end, admissible because the field never drops below 1.
// The returned path includes both endpoints and moves only between
// cardinal neighbors.
func FindPath(start, end world.Point, grid *world.Grid, field *world.CostField) (world.Path, error) {
	if !grid.Contains(start) {
		return nil, fmt.Errorf("%w: start %v", ErrInvalidCoordinate, start)
	}
	if !grid.Contains(end) {
		return nil, fmt.Errorf("%w: end %v", ErrInvalidCoordinate, end)
	}

	frontier := heap.New(func(a, b frontierNode) bool {
		if a.f == b.f {
			return a.seq < b.seq
		}
		return a.f < b.f
	})

	cameFrom := make(map[world.Point]world.Point)
	costSoFar := map[world.Point]float64{start: 0}
	closed := mapset.New[world.Point]()

	seq := 0
	frontier.Push(frontierNode{pos: start, f: float64(start.ManhattanDistance(end))})

	for {
		node, ok := frontier.Pop()
		if !ok {
			return nil, fmt.Errorf("%w: frontier exhausted before reaching %v", ErrNoPath, end)
		}
		if node.pos == end {
			break
		}
		if closed.Has(node.pos) {
			continue
		}
		closed.Put(node.pos)

		for _, n := range grid.Neighbors(node.pos) {
			newCost := costSoFar[node.pos] + field.At(n)
			if best, seen := costSoFar[n]; seen && newCost >= best {
				continue
			}
			costSoFar[n] = newCost
			cameFrom[n] = node.pos
			seq++
			frontier.Push(frontierNode{
				pos: n,
				f:   newCost + float64(n.ManhattanDistance(end)),
				seq: seq,
			})
		}
	}

	return reconstruct(cameFrom, start, end, grid.Width()*grid.Height())
}

// reconstruct walks the predecessor map backward from end to start and
// reverses the result. The walk is bounded by the grid cell count so a
// malformed map surfaces as an error instead of an endless loop.
func reconstruct(cameFrom map[world.Point]world.Point, start, end world.Point, maxSteps int) (world.Path, error) {
	path := world.Path{end}
	cur := end
	for cur != start {
		prev, ok := cameFrom[cur]
		if !ok {
			return nil, fmt.Errorf("%w: predecessor chain broken at %v", ErrNoPath, cur)
		}
		if len(path) > maxSteps {
			return nil, fmt.Errorf("%w: predecessor chain exceeds grid size", ErrNoPath)
		}
		cur = prev
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
