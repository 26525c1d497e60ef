package cryostat

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-geomid/geomid"
	"github.com/stretchr/testify/assert"
)

func TestWire_RoundTrip(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	for _, plane := range []int{PlaneX, PlaneV, PlaneU, 255} {
		for _, wire := range []int{0, 1, 336, 8191} {
			id := Wire(plane, wire)
			if !id.IsValid() {
				t.Fatalf("Wire(%d, %d) is not valid", plane, wire)
			}
			assert.True(t, IsCryostat(id))
			assert.True(t, IsWire(id))
			assert.Equal(t, plane, GetWirePlane(id))
			assert.Equal(t, wire, GetWireNumber(id))
			assert.Equal(t, -1, GetPlane(id))
		}
	}
}

func TestGlobal_RoundTrip(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	tests := []struct {
		name string
		id   geomid.GeometryId
		get  func(geomid.GeometryId) int
		want int
	}{
		{"plane", Plane(PlaneU), GetPlane, PlaneU},
		{"photosensor", Photosensor(23), GetPhotosensor, 23},
		{"shifter", WavelengthShifter(4), GetWavelengthShifter, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.id.IsValid())
			assert.Equal(t, tt.want, tt.get(tt.id))
			assert.False(t, IsWire(tt.id))
		})
	}
	assert.True(t, IsPhotosensor(Photosensor(0)))
	assert.False(t, IsPhotosensor(Plane(0)))
}

func TestDistinctIds(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	ids := []geomid.GeometryId{
		Detector(), Drift(), Plane(0), Plane(1),
		Wire(0, 0), Wire(1, 0), Photosensor(0), WavelengthShifter(0),
	}
	seen := map[geomid.GeometryId]bool{}
	for _, id := range ids {
		assert.True(t, id.IsValid(), "%v", id)
		assert.False(t, seen[id], "duplicate %v", id)
		seen[id] = true
	}
}

func TestShapeMismatch(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	others := []geomid.GeometryId{
		geomid.Empty(),
		Detector(),
		Drift(),
		geomid.GeometryId(geomid.P0D<<geomid.DetectorLSB | SeqWire<<geomid.SeqIdLSB),
	}
	for _, id := range others {
		assert.Equal(t, -1, GetWirePlane(id), "%v", id)
		assert.Equal(t, -1, GetWireNumber(id), "%v", id)
		assert.Equal(t, -1, GetPlane(id), "%v", id)
		assert.Equal(t, -1, GetPhotosensor(id), "%v", id)
	}
}

func TestOutOfRange(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	tests := []struct {
		name string
		id   geomid.GeometryId
	}{
		{"plane too wide", Wire(256, 0)},
		{"wire too wide", Wire(0, 8192)},
		{"negative wire", Wire(0, -1)},
		{"plane field too wide", Plane(1 << 13)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, geomid.Empty(), tt.id)
			assert.False(t, tt.id.IsValid())
		})
	}
}
