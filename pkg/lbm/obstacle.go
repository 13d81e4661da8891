package lbm

import (
	"math"
	"sort"
)

// BoundaryNode is a fluid cell adjacent to an obstacle. Q is the lattice
// direction pointing from the fluid cell back into the obstacle, used for
// bounce-back and force integration.
type BoundaryNode struct {
	I, J int
	Q    int
}

// Obstacle is a rasterized polygon. Immutable once registered.
type Obstacle struct {
	Polygon  [][2]float64
	Area     float64
	Boundary []BoundaryNode
	// IBB holds one sub-grid fractional distance per boundary node,
	// populated only when interpolated bounce-back is enabled.
	IBB []float64
	Tag int
}

// Empty reports whether the polygon enclosed no lattice cells.
func (o *Obstacle) Empty() bool { return len(o.Boundary) == 0 && o.Area == 0 }

// Obstacles returns the registered obstacles.
func (l *Lattice) Obstacles() []*Obstacle { return l.obstacles }

// AddObstacle rasterizes polygon onto the tag grid and registers the
// result under tag. Cells strictly inside the polygon are tagged, the
// first layer of adjacent fluid cells becomes the boundary-node list, and
// in IBB mode each boundary node gets a sub-grid distance to the surface.
//
// A degenerate polygon (fewer than 3 vertices, or one enclosing no cells)
// is logged and still registered as an empty obstacle; the returned
// *ObstacleGeometryError reports it.
func (l *Lattice) AddObstacle(polygon [][2]float64, tag int) (*Obstacle, error) {
	obs := &Obstacle{Polygon: polygon, Tag: tag}
	l.obstacles = append(l.obstacles, obs)

	if len(polygon) < 3 {
		err := &ObstacleGeometryError{Tag: tag, Reason: "polygon has fewer than 3 vertices"}
		l.log.Info("degenerate obstacle", "tag", tag, "vertices", len(polygon))
		return obs, err
	}

	// Polygon bounding box.
	xlo, xhi := polygon[0][0], polygon[0][0]
	ylo, yhi := polygon[0][1], polygon[0][1]
	for _, p := range polygon[1:] {
		xlo = math.Min(xlo, p[0])
		xhi = math.Max(xhi, p[0])
		ylo = math.Min(ylo, p[1])
		yhi = math.Max(yhi, p[1])
	}

	// Tag every lattice node strictly inside the bounding box that the
	// even-odd rule places inside the polygon.
	var cells [][2]int
	for i := 0; i < l.nx; i++ {
		for j := 0; j < l.ny; j++ {
			x, y := l.Coords(i, j)
			if x <= xlo || x >= xhi || y <= ylo || y >= yhi {
				continue
			}
			if isInside(polygon, x, y) {
				l.lattice[l.idx(i, j)] = tag
				cells = append(cells, [2]int{i, j})
			}
		}
	}

	// Boundary extraction: the first layer of fluid around the obstacle.
	// A fluid cell can neighbor several tagged cells, so the list is
	// sorted and deduplicated.
	for _, c := range cells {
		for q := 1; q < 9; q++ {
			ii := c[0] + l.c[q][0]
			jj := c[1] + l.c[q][1]
			if ii < 0 || ii >= l.nx || jj < 0 || jj >= l.ny {
				continue
			}
			if l.lattice[l.idx(ii, jj)] == 0 {
				obs.Boundary = append(obs.Boundary, BoundaryNode{I: ii, J: jj, Q: l.ns[q]})
			}
		}
	}
	sort.Slice(obs.Boundary, func(a, b int) bool {
		ba, bb := obs.Boundary[a], obs.Boundary[b]
		if ba.I != bb.I {
			return ba.I < bb.I
		}
		if ba.J != bb.J {
			return ba.J < bb.J
		}
		return ba.Q < bb.Q
	})
	obs.Boundary = dedupBoundary(obs.Boundary)

	// Sub-grid distances for interpolated bounce-back: minimum distance
	// from the boundary node to a polygon vertex, normalized by the cell
	// size along the bounce-back direction.
	if l.cfg.IBB {
		obs.IBB = make([]float64, len(obs.Boundary))
		for k, b := range obs.Boundary {
			x, y := l.Coords(b.I, b.J)
			min := math.Inf(1)
			for _, p := range polygon {
				dx := p[0] - x
				dy := p[1] - y
				if d := math.Sqrt(dx*dx + dy*dy); d < min {
					min = d
				}
			}
			cn := math.Hypot(float64(l.c[b.Q][0]), float64(l.c[b.Q][1]))
			obs.IBB[k] = min / (l.cfg.Dx * cn)
		}
	}

	obs.Area = float64(len(cells)) * l.cfg.Dx * l.cfg.Dx

	l.log.Info("obstacle",
		"tag", tag,
		"cells", len(cells),
		"boundary", len(obs.Boundary),
		"area", obs.Area,
	)

	if len(cells) == 0 {
		return obs, &ObstacleGeometryError{Tag: tag, Reason: "polygon encloses no lattice cells"}
	}
	return obs, nil
}

func dedupBoundary(b []BoundaryNode) []BoundaryNode {
	if len(b) < 2 {
		return b
	}
	out := b[:1]
	for _, n := range b[1:] {
		if n != out[len(out)-1] {
			out = append(out, n)
		}
	}
	return out
}

// isInside applies the even-odd (ray casting) rule: a horizontal ray from
// (x,y) toggles the inside flag at each crossed edge, using a half-open
// interval test on y so shared vertices are counted once.
func isInside(poly [][2]float64, x, y float64) bool {
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		yi := poly[i][1]
		yj := poly[j][1]
		if ((yi < y && y <= yj) || (yj < y && y <= yi)) &&
			(poly[i][0] < x || poly[j][0] < x) {
			slope := (poly[j][0] - poly[i][0]) / (yj - yi)
			if poly[i][0]+(y-yi)*slope < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// CirclePolygon builds an n-gon approximating the circle of radius r
// centered at (cx,cy), the cylinder benchmark geometry.
func CirclePolygon(cx, cy, r float64, n int) [][2]float64 {
	poly := make([][2]float64, n)
	for k := 0; k < n; k++ {
		a := 2.0 * math.Pi * float64(k) / float64(n)
		poly[k] = [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return poly
}
