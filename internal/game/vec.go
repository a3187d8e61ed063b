package game

type Vec2 struct {
	X, Y float64
}

// DistSq is the squared distance to q. The hit path compares squared
// distances against squared radii so no root is ever taken.
func (v Vec2) DistSq(q Vec2) float64 {
	dx, dy := v.X-q.X, v.Y-q.Y
	return dx*dx + dy*dy
}
