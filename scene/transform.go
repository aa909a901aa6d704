package scene

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform returns the local affine matrix [a, b, c, d, tx, ty]
// of n, composed as Scale -> Rotate -> Translate(X, Y).
func computeLocalTransform(n *Node) [6]float64 {
	sin, cos := math.Sincos(n.Rotation)
	return [6]float64{
		cos * n.ScaleX,
		sin * n.ScaleX,
		-sin * n.ScaleY,
		cos * n.ScaleY,
		n.X,
		n.Y,
	}
}

// multiplyAffine returns parent * child.
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// WorldTransform returns the affine matrix from this node's local space to
// world space. It is recomputed only when the node is dirty or an
// ancestor's transform changed since the last call.
func (n *Node) WorldTransform() [6]float64 {
	parent := identityTransform
	if n.Parent != nil {
		parent = n.Parent.WorldTransform()
	}

	if n.transformDirty || parent != n.parentTransform {
		n.worldTransform = multiplyAffine(parent, computeLocalTransform(n))
		n.parentTransform = parent
		n.transformDirty = false
	}
	return n.worldTransform
}

// LocalToWorld converts a point in this node's local space to world space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(n.WorldTransform(), lx, ly)
}

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.transformDirty = true
}

// SetRotation sets the node's rotation (in radians) and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// ResetTransform puts the node at its parent's origin, unscaled and
// unrotated.
func (n *Node) ResetTransform() {
	n.X, n.Y = 0, 0
	n.ScaleX, n.ScaleY = 1, 1
	n.Rotation = 0
	n.transformDirty = true
}

// MarkDirty forces the world transform to be recomputed. Needed after
// assigning the transform fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}
