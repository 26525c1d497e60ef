package geomidmap

import "sort"

// GeometryCallback is run after the geometry or its alignment changes.
// event is the event that caused the change and may be nil.
type GeometryCallback func(event Event)

// RegisterGeometryCallback adds or replaces the callback called name.
// Callbacks run in name order.
func (m *Manager) RegisterGeometryCallback(name string, fn GeometryCallback) {
	m.callbacks[name] = fn
}

func (m *Manager) RemoveGeometryCallback(name string) {
	delete(m.callbacks, name)
}

func (m *Manager) ClearGeometryCallbacks() {
	m.callbacks = map[string]GeometryCallback{}
}

func (m *Manager) applyCallbacks(event Event) {
	names := make([]string, 0, len(m.callbacks))
	for name := range m.callbacks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		m.log.Debugf("geometry callback %s", name)
		m.callbacks[name](event)
	}
}
