package Trees

// A node in the AVLTree.
// h is 1 for a leaf and 1+max(h(l), h(r)) otherwise; a nil child has height 0.
// A node exclusively owns its children.
type node[K any, V any] struct {
	k    K
	v    V
	l, r *node[K, V]
	h    int
}

// height of n, 0 when n is nil.
func height[K any, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.h
}

// fix recomputes the height of n from its children.
// Time: O(1); Space: O(1)
func (n *node[K, V]) fix() {
	n.h = 1 + max(height(n.l), height(n.r))
}

// balance factor of n: h(l)-h(r).
func (n *node[K, V]) balance() int {
	return height(n.l) - height(n.r)
}

// rotateLeft performs a left rotation on n and returns the new root of the
// subtree, which the caller stores back into its child slot. Heights are
// recomputed from the lowered node upwards.
// Time: O(1); Space: O(1)
func rotateLeft[K any, V any](n *node[K, V]) *node[K, V] {
	rc := n.r
	n.r = rc.l
	rc.l = n
	n.fix()
	rc.fix()
	return rc
}

// rotateRight performs a right rotation on n and returns the new root of the
// subtree. See rotateLeft.
// Time: O(1); Space: O(1)
func rotateRight[K any, V any](n *node[K, V]) *node[K, V] {
	lc := n.l
	n.l = lc.r
	lc.r = n
	n.fix()
	lc.fix()
	return lc
}

// rotateLeftRight fixes a left-right zig-zag: rotate the left child left, then n right.
func rotateLeftRight[K any, V any](n *node[K, V]) *node[K, V] {
	n.l = rotateLeft(n.l)
	return rotateRight(n)
}

// rotateRightLeft fixes a right-left zig-zag: rotate the right child right, then n left.
func rotateRightLeft[K any, V any](n *node[K, V]) *node[K, V] {
	n.r = rotateRight(n.r)
	return rotateLeft(n)
}
