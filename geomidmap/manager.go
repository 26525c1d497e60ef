package geomidmap

import (
	"sort"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-geomid/contenthash"
	"github.com/forestrie/go-geomid/geomid"
	"github.com/forestrie/go-geomid/geomtree"
)

// Manager maps geometry ids to the nodes of a loaded geometry tree and
// decides when a different tree needs to be loaded.
//
// The tree cursor is shared state. Every method that moves the cursor on
// the caller's behalf restores it before returning, except CdId whose job
// is to move it. A Manager is not safe for concurrent use.
type Manager struct {
	log  *logger.WrappedLogger
	opts Options
	tree geomtree.Tree

	forward map[int32]geomtree.NodeKey
	reverse map[geomtree.NodeKey]int32

	hash contenthash.Value
	// changedHash is the hash the geometry callbacks were last run for
	changedHash contenthash.Value
	alignment   contenthash.AlignmentID
	context     EventContext

	overrideFile string
	overrideHash contenthash.Value

	inputName string
	input     *geomtree.Snapshot

	lockCount int
	callbacks map[string]GeometryCallback

	metrics *metrics
}

// New creates a manager. When tree is not nil its hash and id map are
// built straight away and any failure to do so is returned along with the
// manager.
func New(log *logger.WrappedLogger, tree geomtree.Tree, opts ...Option) (*Manager, error) {
	options := defaultOptions()
	for _, o := range opts {
		o(&options)
	}
	m := &Manager{
		log:       log,
		opts:      options,
		forward:   map[int32]geomtree.NodeKey{},
		reverse:   map[geomtree.NodeKey]int32{},
		context:   InvalidContext(),
		callbacks: map[string]GeometryCallback{},
		metrics:   newMetrics(options.registerer),
	}
	if tree == nil {
		return m, nil
	}
	m.tree = tree
	return m, m.ResetGeometry()
}

// Tree returns the current tree, nil if none has been loaded
func (m *Manager) Tree() geomtree.Tree { return m.tree }

// GetHash returns the hash of the current tree
func (m *Manager) GetHash() contenthash.Value { return m.hash }

// GetAlignmentId returns the alignment applied to the current tree
func (m *Manager) GetAlignmentId() contenthash.AlignmentID { return m.alignment }

// GeomEventContext is the context of the last event the geometry was
// checked for.
func (m *Manager) GeomEventContext() EventContext { return m.context }

// Entry pairs a geometry id with its node
type Entry struct {
	Id   geomid.GeometryId
	Node geomtree.NodeKey
}

// Entries returns the id map ordered by id
func (m *Manager) Entries() []Entry {
	entries := make([]Entry, 0, len(m.forward))
	for id, key := range m.forward {
		entries = append(entries, Entry{Id: geomid.GeometryId(id), Node: key})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Id.Less(entries[j].Id)
	})
	return entries
}

func (m *Manager) clearMap() {
	m.forward = map[int32]geomtree.NodeKey{}
	m.reverse = map[geomtree.NodeKey]int32{}
	m.metrics.entries.Set(0)
}
