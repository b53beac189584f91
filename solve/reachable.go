package solve

import "github.com/runfalk/burrow/grid"

// Step is one cell reachable from a piece's position, with the minimum
// number of orthogonal steps needed to get there.
type Step struct {
	X, Y  int
	Steps int
}

// neighborOffsets are the four orthogonal directions: N, E, S, W.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// queueItem pairs a cell with its BFS distance from the source.
type queueItem struct {
	x, y  int
	steps int
}

// ReachableFrom runs a breadth-first traversal from (x,y) over empty
// cells and returns every reachable empty cell with its minimum step
// count. The source cell itself is excluded. Each cell is visited at
// most once via a local visited set, so the traversal terminates in
// O(width×height) regardless of grid content.
func ReachableFrom(g *grid.Grid, x, y int) []Step {
	queue := []queueItem{{x: x, y: y, steps: 0}}
	visited := map[grid.Coord]bool{{X: x, Y: y}: true}

	var reachable []Step
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		for _, d := range neighborOffsets {
			nx, ny := item.x+d[0], item.y+d[1]
			c, ok := g.CellAt(nx, ny)
			if !ok || !c.IsEmpty() {
				continue
			}
			if visited[grid.Coord{X: nx, Y: ny}] {
				continue
			}
			visited[grid.Coord{X: nx, Y: ny}] = true
			queue = append(queue, queueItem{x: nx, y: ny, steps: item.steps + 1})

			// Recorded at enqueue time so the source cell never appears.
			reachable = append(reachable, Step{X: nx, Y: ny, Steps: item.steps + 1})
		}
	}

	return reachable
}
