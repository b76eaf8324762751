package systems

import (
	"math"

	astar "github.com/beefsack/go-astar"
	"github.com/solarlune/resolv"

	"github.com/automoto/brawler/tags"
)

// NavGrid represents the walkable floor of the arena
type NavGrid struct {
	Width, Height int
	CellSize      float64
	Nodes         [][]*NavNode // 2D grid of nodes
}

// NavNode represents a single cell in the navigation grid
// Implements astar.Pather interface
type NavNode struct {
	X, Y     int
	Walkable bool
	Grid     *NavGrid // Reference to parent grid for neighbor lookup
}

var navDirs = []struct{ dx, dy int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1}, // Cardinal
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1}, // Diagonal
}

// PathNeighbors returns adjacent walkable nodes (implements astar.Pather).
// Diagonals are only offered when both cardinal cells beside them are open,
// so paths never cut a wall corner.
func (n *NavNode) PathNeighbors() []astar.Pather {
	neighbors := make([]astar.Pather, 0, 8)

	for _, d := range navDirs {
		nx, ny := n.X+d.dx, n.Y+d.dy
		if !n.Grid.walkable(nx, ny) {
			continue
		}
		if d.dx != 0 && d.dy != 0 {
			if !n.Grid.walkable(n.X+d.dx, n.Y) || !n.Grid.walkable(n.X, n.Y+d.dy) {
				continue
			}
		}
		neighbors = append(neighbors, n.Grid.Nodes[ny][nx])
	}

	return neighbors
}

// PathNeighborCost returns the movement cost between adjacent nodes (implements astar.Pather)
func (n *NavNode) PathNeighborCost(to astar.Pather) float64 {
	toNode := to.(*NavNode)

	dx := float64(toNode.X - n.X)
	dy := float64(toNode.Y - n.Y)

	// Diagonal movement costs more (sqrt(2))
	return math.Sqrt(dx*dx + dy*dy)
}

// PathEstimatedCost returns heuristic distance to target (implements astar.Pather)
func (n *NavNode) PathEstimatedCost(to astar.Pather) float64 {
	toNode := to.(*NavNode)

	dx := float64(toNode.X - n.X)
	dy := float64(toNode.Y - n.Y)

	// Euclidean distance heuristic
	return math.Sqrt(dx*dx + dy*dy)
}

func (g *NavGrid) walkable(x, y int) bool {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return false
	}
	return g.Nodes[y][x].Walkable
}

// CreateNavGrid builds navigation grid from resolv Space. A cell is blocked
// when solid geometry lies within clearance pixels of it, which keeps bodies
// of up to 2*clearance from snagging on walls while following a path.
func CreateNavGrid(space *resolv.Space, levelWidth, levelHeight int, cellSize, clearance float64) *NavGrid {
	gridW := int(float64(levelWidth) / cellSize)
	gridH := int(float64(levelHeight) / cellSize)

	grid := &NavGrid{
		Width:    gridW,
		Height:   gridH,
		CellSize: cellSize,
		Nodes:    make([][]*NavNode, gridH),
	}

	for y := 0; y < gridH; y++ {
		grid.Nodes[y] = make([]*NavNode, gridW)
		for x := 0; x < gridW; x++ {
			grid.Nodes[y][x] = &NavNode{
				X:        x,
				Y:        y,
				Walkable: true, // Default to walkable
				Grid:     grid,
			}
		}
	}

	// Probe each cell, grown by the clearance, against solid geometry
	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			worldX := float64(x)*cellSize + cellSize/2
			worldY := float64(y)*cellSize + cellSize/2
			half := math.Max(clearance, 1)

			testObj := resolv.NewObject(worldX-half, worldY-half, half*2, half*2)
			space.Add(testObj)

			if check := testObj.Check(0, 0, tags.ResolvSolid); check != nil {
				for _, o := range check.Objects {
					if rectsOverlap(testObj.X, testObj.Y, testObj.W, testObj.H, o.X, o.Y, o.W, o.H) {
						grid.Nodes[y][x].Walkable = false
						break
					}
				}
			}

			space.Remove(testObj)
		}
	}

	return grid
}

// FindPath uses go-astar to find path between world coordinates
func (g *NavGrid) FindPath(startX, startY, goalX, goalY float64) []*NavNode {
	if g.Width == 0 || g.Height == 0 {
		return nil
	}

	// Convert world coords to grid coords
	sx := clampInt(int(startX/g.CellSize), 0, g.Width-1)
	sy := clampInt(int(startY/g.CellSize), 0, g.Height-1)
	gx := clampInt(int(goalX/g.CellSize), 0, g.Width-1)
	gy := clampInt(int(goalY/g.CellSize), 0, g.Height-1)

	startNode := g.Nodes[sy][sx]
	goalNode := g.Nodes[gy][gx]

	// Handle case where start or goal is in solid geometry
	if !startNode.Walkable {
		startNode = g.findNearestWalkable(sx, sy)
	}
	if !goalNode.Walkable {
		goalNode = g.findNearestWalkable(gx, gy)
	}

	if startNode == nil || goalNode == nil {
		return nil
	}
	if startNode == goalNode {
		return []*NavNode{goalNode}
	}

	path, _, found := astar.Path(startNode, goalNode)
	if !found {
		return nil
	}

	// go-astar returns the path goal first
	result := make([]*NavNode, len(path))
	for i, p := range path {
		result[len(path)-1-i] = p.(*NavNode)
	}

	return result
}

// findNearestWalkable finds the nearest walkable node to the given position
func (g *NavGrid) findNearestWalkable(x, y int) *NavNode {
	// Search in expanding squares
	for radius := 1; radius < 10; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if g.walkable(x+dx, y+dy) {
					return g.Nodes[y+dy][x+dx]
				}
			}
		}
	}
	return nil
}

// GridToWorld converts grid coordinates to world coordinates (center of cell)
func (g *NavGrid) GridToWorld(gridX, gridY int) (float64, float64) {
	return float64(gridX)*g.CellSize + g.CellSize/2,
		float64(gridY)*g.CellSize + g.CellSize/2
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}

func rectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}
