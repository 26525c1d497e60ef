package p0d

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-geomid/geomid"
	"github.com/forestrie/go-geomid/geomid/tpc"
	"github.com/stretchr/testify/assert"
)

func TestBar_RoundTrip(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	seen := map[geomid.GeometryId]bool{}
	for p := 0; p < 40; p++ {
		for xy := 0; xy < 2; xy++ {
			for b := 0; b < 134; b++ {
				id := Bar(p, xy, b)
				if !id.IsValid() || !IsP0D(id) {
					t.Fatalf("Bar(%d, %d, %d) = %v", p, xy, b, id)
				}
				if GetBarP0Dule(id) != p || GetBarLayer(id) != xy || GetBarNumber(id) != b {
					t.Fatalf("Bar(%d, %d, %d) decodes to (%d, %d, %d)", p, xy, b,
						GetBarP0Dule(id), GetBarLayer(id), GetBarNumber(id))
				}
				if seen[id] {
					t.Fatalf("Bar(%d, %d, %d) duplicates an earlier id", p, xy, b)
				}
				seen[id] = true
			}
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
		{"super p0dule", SuperP0Dule(CECal), GetSuperP0Dule, CECal},
		{"p0dule", P0Dule(39), GetP0Dule, 39},
		{"target", Target(25), GetTarget, 25},
		{"ecal radiator", ECalRadiator(13), GetECalRadiator, 13},
		{"target radiator", TargetRadiator(2), GetTargetRadiator, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.id.IsValid())
			assert.Equal(t, tt.want, tt.get(tt.id))
			assert.Equal(t, -1, GetBarNumber(tt.id))
		})
	}
	// kinds do not leak into each other
	assert.Equal(t, -1, GetP0Dule(Target(3)))
	assert.Equal(t, -1, GetECalRadiator(TargetRadiator(3)))
}

func TestShapeMismatch(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	others := []geomid.GeometryId{
		geomid.Empty(),
		Detector(),
		tpc.Pad(0, 0, 0, 0),
	}
	for _, id := range others {
		assert.Equal(t, -1, GetBarP0Dule(id), "%v", id)
		assert.Equal(t, -1, GetBarLayer(id), "%v", id)
		assert.Equal(t, -1, GetBarNumber(id), "%v", id)
		assert.Equal(t, -1, GetP0Dule(id), "%v", id)
	}
}

func TestOutOfRange(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	assert.Equal(t, geomid.Empty(), Bar(64, 0, 0))
	assert.Equal(t, geomid.Empty(), Bar(0, 2, 0))
	assert.Equal(t, geomid.Empty(), Bar(0, 0, 4096))
	assert.True(t, Bar(63, 1, 4095).IsValid())
}
