package Trees

import (
	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree with no repeated keys. It maintains
// balance by tracking the height of every subtree and rotating whenever
// the balance factor of a node leaves {-1,0,1} after an insertion.
// K is the key type, V is the payload stored next to each key.
// The worst case height of the tree is less than 1.44*log2(n+2)-0.328.
// The zero value is an empty tree ready to use.
// AVLTree is not safe for concurrent use; a single writer and reader is assumed.
type AVLTree[K constraints.Ordered, V any] struct {
	root *node[K, V]
	sz   uint
}

// New returns an empty AVLTree.
func New[K constraints.Ordered, V any]() *AVLTree[K, V] {
	return &AVLTree[K, V]{}
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *AVLTree[K, V]) Size() uint {
	return u.sz
}

// Height [Tree.Height]
// Time: O(1); Space: O(1)
func (u *AVLTree[K, V]) Height() uint {
	return uint(height(u.root))
}

// rebalance the subtree rooting at cur after k was inserted below it. At most
// one of the four rotations is applied, chosen by comparing k with the key
// of the heavier child. Returns the new root of the subtree.
func rebalance[K constraints.Ordered, V any](cur *node[K, V], k K) *node[K, V] {
	switch b := cur.balance(); {
	case b > 1 && k < cur.l.k:
		return rotateRight(cur)
	case b < -1 && cur.r.k < k:
		return rotateLeft(cur)
	case b > 1 && cur.l.k < k:
		return rotateLeftRight(cur)
	case b < -1 && k < cur.r.k:
		return rotateRightLeft(cur)
	}
	return cur
}

// insert the pair (k, v) to the subtree rooting at cur recursively. Returns
// the new root of the subtree, to be stored by the caller in place of cur,
// and whether a node was created. Nothing is rebalanced when k already exists.
func (u *AVLTree[K, V]) insert(cur *node[K, V], k K, v V) (*node[K, V], bool) {
	if cur == nil {
		u.sz++
		return &node[K, V]{k: k, v: v, h: 1}, true
	}
	inserted := false
	if k < cur.k {
		cur.l, inserted = u.insert(cur.l, k, v)
	} else if cur.k < k {
		cur.r, inserted = u.insert(cur.r, k, v)
	} else {
		return cur, false
	}
	if inserted {
		cur.fix()
		cur = rebalance(cur, k)
	}
	return cur, inserted
}

// Insert [Tree.Insert]. Recursive.
// It is a wrapper for insert.
// Time: O(D)
func (u *AVLTree[K, V]) Insert(k K, v V) bool {
	var inserted bool
	u.root, inserted = u.insert(u.root, k, v)
	return inserted
}

// Search [Tree.Search]
// Pass path[:0] to reuse a buffer between calls, or nil to get a fresh path.
// Time: O(D); Space: O(1) besides the path
func (u *AVLTree[K, V]) Search(k K, path []K) (*V, []K) {
	for cur := u.root; cur != nil; {
		path = append(path, cur.k)
		if k < cur.k {
			cur = cur.l
		} else if cur.k < k {
			cur = cur.r
		} else {
			return &cur.v, path
		}
	}
	return nil, path
}

// Get [Tree.Get]
// Time: O(D); Space: O(1)
func (u *AVLTree[K, V]) Get(k K) *V {
	for cur := u.root; cur != nil; {
		if k < cur.k {
			cur = cur.l
		} else if cur.k < k {
			cur = cur.r
		} else {
			return &cur.v
		}
	}
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *AVLTree[K, V]) Has(k K) bool {
	return u.Get(k) != nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *AVLTree[K, V]) Minimum() (K, bool) {
	if cur := u.root; cur == nil {
		return *new(K), false
	} else {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.k, true
	}
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *AVLTree[K, V]) Maximum() (K, bool) {
	if cur := u.root; cur == nil {
		return *new(K), false
	} else {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.k, true
	}
}

// InOrder [Tree.InOrder]
// Stack based; the stack never grows beyond the height of the tree.
// Time: O(n); Space: O(D)
func (u *AVLTree[K, V]) InOrder(f func(K, *V) bool) {
	st := make([]*node[K, V], 0, height(u.root))
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(cur.k, &cur.v) {
			return
		}
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
}

// Walk the tree in pre-order. enter is called on every node with the side it
// hangs from; returning false skips the node's children. leave is called once
// the children of an entered node are done, so callers can keep a stack in
// step with the descent. Recursive.
// Time: O(n)
func (u *AVLTree[K, V]) Walk(enter func(k K, v *V, s Side) bool, leave func()) {
	var walk func(*node[K, V], Side)
	walk = func(cur *node[K, V], s Side) {
		if cur == nil {
			return
		}
		if enter(cur.k, &cur.v, s) {
			walk(cur.l, Left)
			walk(cur.r, Right)
		}
		leave()
	}
	walk(u.root, Root)
}

// corrupt checks the subtree rooting at cur, whose keys must lie strictly
// between lo and hi when those are non-nil. Returns the recomputed height and
// whether a violation was found. Recursive.
func corrupt[K constraints.Ordered, V any](cur *node[K, V], lo, hi *K) (int, bool) {
	if cur == nil {
		return 0, false
	}
	if (lo != nil && !(*lo < cur.k)) || (hi != nil && !(cur.k < *hi)) {
		return 0, true
	}
	lh, bad := corrupt(cur.l, lo, &cur.k)
	if bad {
		return 0, true
	}
	rh, bad := corrupt(cur.r, &cur.k, hi)
	if bad {
		return 0, true
	}
	h := 1 + max(lh, rh)
	if b := lh - rh; h != cur.h || b > 1 || b < -1 {
		return h, true
	}
	return h, false
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n)
func (u *AVLTree[K, V]) Corrupt() bool {
	_, bad := corrupt(u.root, nil, nil)
	return bad
}

// Clear [Tree.Clear]
// Time: O(1)
func (u *AVLTree[K, V]) Clear() {
	u.root, u.sz = nil, 0
}
