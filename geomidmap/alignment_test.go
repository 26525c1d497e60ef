package geomidmap

import (
	"context"
	"strings"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-geomid/contenthash"
	"github.com/forestrie/go-geomid/geomid"
	"github.com/forestrie/go-geomid/geomid/cryostat"
	"github.com/forestrie/go-geomid/geomtree"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type correction struct {
	id geomid.GeometryId
	m  geomtree.Matrix
}

// fakeAlignment replays a fixed set of corrections
type fakeAlignment struct {
	id          contenthash.AlignmentID
	corrections []correction
	check       bool
	next        int
}

func (f *fakeAlignment) StartAlignment(Event) contenthash.AlignmentID {
	f.next = 0
	return f.id
}

func (f *fakeAlignment) Align(Event) (*geomtree.Matrix, geomid.GeometryId) {
	if f.next >= len(f.corrections) {
		return nil, geomid.Empty()
	}
	c := f.corrections[f.next]
	f.next++
	return &c.m, c.id
}

func (f *fakeAlignment) CheckAlignment(Event) bool { return f.check }

var survey = contenthash.NewAlignmentID(contenthash.Value{9, 9, 9, 9, 9}, "survey")

func TestApplyAlignment(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	lookup := &fakeAlignment{
		id: survey,
		corrections: []correction{
			{cryostat.Wire(0, 1), geomtree.Translation(geomtree.Vector{0, 0, 3})},
		},
	}
	m := newCaptain(t, WithAlignmentLookup(lookup), WithRegisterer(prometheus.NewRegistry()))
	hash := m.GetHash()

	require.NoError(t, m.ApplyAlignment(context.Background(), nil))
	assert.True(t, m.GetAlignmentId().Equivalent(survey))
	assert.True(t, m.Tree().Locked())
	assert.Equal(t, float64(1), testutil.ToFloat64(m.metrics.corrections))

	// both halves of the name survive
	name := m.Tree().Name()
	got, err := contenthash.HashFromName(contenthash.DefaultPrefix, name)
	require.NoError(t, err)
	assert.Equal(t, hash, got)
	aid, err := contenthash.AlignmentFromName(contenthash.DefaultPrefix, name)
	require.NoError(t, err)
	assert.True(t, aid.Equivalent(survey))

	pos, ok := m.GetPosition(cryostat.Wire(0, 1))
	require.True(t, ok)
	assert.Equal(t, geomtree.Vector{10, 5, 1003}, pos)
	pos, _ = m.GetPosition(cryostat.Wire(0, 0))
	assert.Equal(t, geomtree.Vector{10, -5, 1000}, pos)

	// realigning starts from the original transforms
	require.NoError(t, m.ApplyAlignment(context.Background(), nil))
	pos, _ = m.GetPosition(cryostat.Wire(0, 1))
	assert.Equal(t, geomtree.Vector{10, 5, 1003}, pos)
}

func TestApplyAlignment_Checks(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	shift := geomtree.Translation(geomtree.Vector{1, 0, 0})
	tests := []struct {
		name    string
		lookup  *fakeAlignment
		wantErr error
		want    contenthash.AlignmentID
	}{
		{"id without corrections", &fakeAlignment{id: survey}, ErrBadAlignment, contenthash.AlignmentID{}},
		{"corrections without id", &fakeAlignment{corrections: []correction{{cryostat.Drift(), shift}}}, ErrBadAlignment, contenthash.AlignmentID{}},
		{"unmapped volume", &fakeAlignment{id: survey, corrections: []correction{{cryostat.Wire(3, 3), shift}}}, ErrBadAlignment, contenthash.AlignmentID{}},
		{"nothing to do", &fakeAlignment{}, nil, contenthash.EmptyAlignment()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newCaptain(t, WithAlignmentLookup(tt.lookup))
			err := m.ApplyAlignment(context.Background(), nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, m.GetAlignmentId().Valid())
				return
			}
			require.NoError(t, err)
			assert.True(t, m.GetAlignmentId().Equivalent(tt.want))
		})
	}
}

func TestApplyAlignment_RejectedSetDropsAlignment(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	lookup := &fakeAlignment{
		id: survey,
		corrections: []correction{
			{cryostat.Wire(0, 1), geomtree.Translation(geomtree.Vector{0, 0, 3})},
		},
	}
	m := newCaptain(t, WithAlignmentLookup(lookup))
	require.NoError(t, m.ApplyAlignment(context.Background(), nil))
	require.True(t, m.GetAlignmentId().Equivalent(survey))

	// a set with corrections but no id must not leave any of them applied
	lookup.id = contenthash.AlignmentID{}
	lookup.corrections = []correction{
		{cryostat.Wire(0, 0), geomtree.Translation(geomtree.Vector{0, 0, 50})},
	}
	err := m.ApplyAlignment(context.Background(), nil)
	require.ErrorIs(t, err, ErrBadAlignment)

	assert.False(t, m.GetAlignmentId().Valid())
	assert.True(t, m.Tree().Locked())
	assert.NotContains(t, m.Tree().Name(), ":")
	_, err = contenthash.HashFromName(contenthash.DefaultPrefix, m.Tree().Name())
	assert.NoError(t, err)

	pos, ok := m.GetPosition(cryostat.Wire(0, 0))
	require.True(t, ok)
	assert.Equal(t, geomtree.Vector{10, -5, 1000}, pos)
	pos, _ = m.GetPosition(cryostat.Wire(0, 1))
	assert.Equal(t, geomtree.Vector{10, 5, 1000}, pos)

	// an event still carrying the survey gets realigned
	lookup.check = false
	assert.True(t, m.CheckAlignment(&EventRecord{Alignment: survey}))
}

func TestApplyAlignment_NoLookup(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	m := newCaptain(t)
	require.NoError(t, m.ApplyAlignment(context.Background(), nil))
	assert.True(t, m.GetAlignmentId().Equivalent(contenthash.EmptyAlignment()))
	assert.True(t, strings.Contains(m.Tree().Name(), ":"))

	none, err := New(logger.Sugar, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, none.ApplyAlignment(context.Background(), nil), ErrNoGeometry)
}

func TestCheckAlignment(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	lookup := &fakeAlignment{}
	m := newCaptain(t, WithAlignmentLookup(lookup))
	assert.True(t, m.CheckAlignment(nil), "nothing applied yet")

	require.NoError(t, m.ApplyAlignment(context.Background(), nil))
	current := m.GetAlignmentId()

	tests := []struct {
		name  string
		event Event
		check bool
		want  bool
	}{
		{"no event", nil, true, false},
		{"current alignment", &EventRecord{Alignment: current}, true, false},
		{"lookup says keep", &EventRecord{Alignment: survey}, false, false},
		{"lookup says change", &EventRecord{Alignment: survey}, true, true},
		{"event has none", &EventRecord{}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup.check = tt.check
			assert.Equal(t, tt.want, m.CheckAlignment(tt.event))
		})
	}
}

func TestGetGeometry_Realign(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	lookup := &fakeAlignment{}
	m := newCaptain(t, WithAlignmentLookup(lookup))
	calls := 0
	m.RegisterGeometryCallback("count", func(Event) { calls++ })

	ctx := context.Background()
	event := &EventRecord{Hash: m.GetHash(), Ctx: EventContext{Run: 1}}
	_, err := m.GetGeometry(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.True(t, event.Alignment.Equivalent(contenthash.EmptyAlignment()))

	// the event was calibrated with the survey, which the lookup provides
	lookup.id = survey
	lookup.check = true
	lookup.corrections = []correction{{cryostat.Drift(), geomtree.Translation(geomtree.Vector{0, 1, 0})}}
	event = &EventRecord{Hash: m.GetHash(), Alignment: survey, Ctx: EventContext{Run: 1}}
	_, err = m.GetGeometry(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.True(t, m.GetAlignmentId().Equivalent(survey))
	assert.True(t, event.Alignment.Equivalent(survey))

	pos, ok := m.GetPosition(cryostat.Wire(0, 1))
	require.True(t, ok)
	assert.Equal(t, geomtree.Vector{10, 6, 1000}, pos)
}
