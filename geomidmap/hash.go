package geomidmap

import (
	"github.com/forestrie/go-geomid/contenthash"
	"github.com/forestrie/go-geomid/geomtree"
)

// BuildHashCode establishes the content hash of the current tree. A hash
// already saved in the tree name is trusted, otherwise it is computed from
// the path and local translation of every node below the top node and
// saved in the name.
func (m *Manager) BuildHashCode() contenthash.Value {
	m.hash = contenthash.Value{}
	if m.tree == nil {
		return m.hash
	}

	if h, err := contenthash.HashFromName(m.opts.prefix, m.tree.Name()); err == nil && h.Valid() {
		m.log.Debugf("geometry hash %s read from the name", h)
		m.hash = h
		return m.hash
	}

	if err := m.checkTop(); err != nil {
		return m.hash
	}

	restore := geomtree.SaveCursor(m.tree)
	defer restore()

	m.tree.CdTop()
	d := contenthash.NewDigest()
	m.hashNode(d)
	m.hash = d.Sum()
	m.tree.SetName(contenthash.SetHashInName(m.opts.prefix, m.tree.Name(), m.hash))
	m.log.Debugf("geometry hash %s built", m.hash)
	return m.hash
}

func (m *Manager) hashNode(d *contenthash.Digest) {
	d.WritePath(m.tree.Path())
	d.WriteVector(m.tree.LocalTranslation())

	n := m.tree.NumDaughters()
	for i := 0; i < n; i++ {
		if !m.tree.CdDown(i) {
			continue
		}
		m.hashNode(d)
		m.tree.CdUp()
	}
}
