package Trees

// Tree represents an ordered key/value tree implemented using nodes.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined. For example, calling Minimum on
// an empty tree returns (x K, false). In that case the value of x should
// be considered undefined.
// Methods implemented recursively are noted, otherwise they are
// implemented iteratively.
type Tree[K any, V any] interface {
	//Insert the pair (k, v). Returns true if k was absent and a node was
	//created, false if k already exists, in which case the tree is untouched.
	Insert(k K, v V) bool
	//Search for k, appending every visited key to path in descent order.
	//Returns the value stored under k, or nil if the descent ran off a
	//missing child, together with the extended path.
	Search(k K, path []K) (*V, []K)
	//Get the value stored under k, nil if absent.
	Get(k K) *V
	//Has key k.
	Has(k K) bool
	//Minimum key of the tree.
	Minimum() (K, bool)
	//Maximum key of the tree.
	Maximum() (K, bool)
	//Size of the tree.
	Size() uint
	//Height of the tree; 0 for an empty tree, 1 for a single node.
	Height() uint
	//InOrder calls f on each pair in ascending key order until f returns false.
	//The tree must not be modified from within f.
	InOrder(f func(K, *V) bool)
	//Walk the tree in pre-order, recursively. enter is called on each node
	//with its side relative to the parent; returning false skips the node's
	//children. leave is called once the subtree of an entered node is done.
	Walk(enter func(k K, v *V, s Side) bool, leave func())
	//Corrupt returns whether the tree has corrupt structures: keys out of
	//order, stale heights, or a balance factor outside {-1,0,1}.
	Corrupt() bool
	//Clear the tree, releasing every node.
	Clear()
}

// Side of a node relative to its parent, as reported by Walk.
type Side byte

const (
	Root Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return "root"
	}
}
