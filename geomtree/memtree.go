package geomtree

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

type memNode struct {
	name      string
	volume    string
	parent    NodeKey
	daughters []NodeKey
	local     Matrix
	halfSize  Vector
}

// MemTree is a Tree held entirely in memory. It is not safe for concurrent
// use, the cursor is shared by every caller.
type MemTree struct {
	name    string
	session uuid.UUID
	nodes   []memNode
	root    NodeKey
	top     NodeKey
	current NodeKey
	stack   []NodeKey
	locked  bool

	// aligned transforms waiting for RefreshPhysicalNodes, and those in
	// effect
	pending map[NodeKey]Matrix
	aligned map[NodeKey]Matrix
}

// NewMemTree builds a tree from its spec. The cursor starts on the root.
func NewMemTree(spec TreeSpec) (*MemTree, error) {
	if spec.Root.Name == "" {
		return nil, fmt.Errorf("%w: tree %q has no root", ErrBadSpec, spec.Name)
	}
	t := &MemTree{
		name:    spec.Name,
		session: uuid.New(),
		pending: map[NodeKey]Matrix{},
		aligned: map[NodeKey]Matrix{},
	}
	if err := t.add(NoNode, spec.Root); err != nil {
		return nil, err
	}
	t.root = 0
	t.top = 0
	t.current = 0
	return t, nil
}

func (t *MemTree) add(parent NodeKey, n NodeSpec) error {
	if n.Rotation != nil && len(n.Rotation) != 9 {
		return fmt.Errorf("%w: node %q rotation has %d elements", ErrBadSpec, n.Name, len(n.Rotation))
	}
	key := NodeKey(len(t.nodes))
	t.nodes = append(t.nodes, memNode{
		name:     n.Name,
		volume:   n.Volume,
		parent:   parent,
		local:    n.Matrix(),
		halfSize: n.HalfSize,
	})
	if parent != NoNode {
		t.nodes[parent].daughters = append(t.nodes[parent].daughters, key)
	}
	for _, d := range n.Daughters {
		if err := t.add(key, d); err != nil {
			return err
		}
	}
	return nil
}

func (t *MemTree) Name() string        { return t.name }
func (t *MemTree) SetName(name string) { t.name = name }
func (t *MemTree) Session() uuid.UUID  { return t.session }

func (t *MemTree) TopVolume() string { return t.nodes[t.top].volume }

func (t *MemTree) SetTopVolume(volume string) bool {
	for i, n := range t.nodes {
		if n.volume == volume {
			t.top = NodeKey(i)
			t.current = t.top
			t.stack = t.stack[:0]
			return true
		}
	}
	return false
}

func (t *MemTree) TopNode() NodeKey     { return t.top }
func (t *MemTree) CurrentNode() NodeKey { return t.current }

func (t *MemTree) valid(key NodeKey) bool {
	return key >= 0 && int(key) < len(t.nodes)
}

// below returns true if key is the top node or one of its descendants
func (t *MemTree) below(key NodeKey) bool {
	for k := key; k != NoNode; k = t.nodes[k].parent {
		if k == t.top {
			return true
		}
	}
	return false
}

func (t *MemTree) CdNode(key NodeKey) bool {
	if !t.valid(key) || !t.below(key) {
		return false
	}
	t.current = key
	return true
}

func (t *MemTree) CdTop() { t.current = t.top }

func (t *MemTree) CdUp() {
	if t.current == t.top {
		return
	}
	t.current = t.nodes[t.current].parent
}

func (t *MemTree) CdDown(i int) bool {
	d := t.nodes[t.current].daughters
	if i < 0 || i >= len(d) {
		return false
	}
	t.current = d[i]
	return true
}

func (t *MemTree) CdPath(path string) bool {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 0 || parts[0] != t.nodes[t.top].name {
		return false
	}
	key := t.top
	for _, part := range parts[1:] {
		next := NoNode
		for _, d := range t.nodes[key].daughters {
			if t.nodes[d].name == part {
				next = d
				break
			}
		}
		if next == NoNode {
			return false
		}
		key = next
	}
	t.current = key
	return true
}

func (t *MemTree) NumDaughters() int { return len(t.nodes[t.current].daughters) }

func (t *MemTree) NodeName() string { return t.nodes[t.current].name }

func (t *MemTree) pathOf(key NodeKey) string {
	var names []string
	for k := key; k != NoNode; k = t.nodes[k].parent {
		names = append(names, t.nodes[k].name)
		if k == t.top {
			break
		}
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return "/" + strings.Join(names, "/")
}

func (t *MemTree) Path() string { return t.pathOf(t.current) }

// matrix is the transform in effect for key
func (t *MemTree) matrix(key NodeKey) Matrix {
	if m, ok := t.aligned[key]; ok {
		return m
	}
	return t.nodes[key].local
}

func (t *MemTree) LocalTranslation() Vector {
	return t.matrix(t.current).Translation
}

func (t *MemTree) LocalToMaster(local Vector) Vector {
	p := local
	for k := t.current; k != t.top && k != NoNode; k = t.nodes[k].parent {
		p = t.matrix(k).Apply(p)
	}
	return p
}

func (t *MemTree) contains(key NodeKey, p Vector) bool {
	h := t.nodes[key].halfSize
	if h == (Vector{}) {
		return false
	}
	for i := range p {
		if math.Abs(p[i]) > h[i] {
			return false
		}
	}
	return true
}

// deepest returns the deepest node under key containing p, given in the
// frame of key. Assemblies are looked through.
func (t *MemTree) deepest(key NodeKey, p Vector) NodeKey {
	for _, d := range t.nodes[key].daughters {
		local := t.matrix(d).InverseApply(p)
		if t.contains(d, local) {
			return t.deepest(d, local)
		}
		if t.nodes[d].halfSize == (Vector{}) {
			if found := t.deepest(d, local); found != NoNode {
				return found
			}
		}
	}
	if t.contains(key, p) {
		return key
	}
	return NoNode
}

func (t *MemTree) FindNode(master Vector) bool {
	found := t.deepest(t.top, master)
	if found == NoNode {
		return false
	}
	t.current = found
	return true
}

func (t *MemTree) PushPath() {
	t.stack = append(t.stack, t.current)
}

func (t *MemTree) PopPath() bool {
	if len(t.stack) == 0 {
		return false
	}
	t.current = t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	return true
}

func (t *MemTree) Lock()        { t.locked = true }
func (t *MemTree) Unlock()      { t.locked = false }
func (t *MemTree) Locked() bool { return t.locked }

func (t *MemTree) ClearPhysicalNodes() {
	t.pending = map[NodeKey]Matrix{}
	t.aligned = map[NodeKey]Matrix{}
}

func (t *MemTree) AlignNode(path string, correction Matrix) error {
	if t.locked {
		return ErrLocked
	}
	save := t.current
	defer func() { t.current = save }()
	if !t.CdPath(path) {
		return fmt.Errorf("%w: %s", ErrNoSuchPath, path)
	}
	t.pending[t.current] = t.nodes[t.current].local.Mul(correction)
	return nil
}

func (t *MemTree) RefreshPhysicalNodes() {
	for k, m := range t.pending {
		t.aligned[k] = m
	}
	t.pending = map[NodeKey]Matrix{}
	t.locked = true
}

// Aligned returns the number of nodes with an aligned transform in effect
func (t *MemTree) Aligned() int { return len(t.aligned) }
