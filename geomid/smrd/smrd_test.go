package smrd

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-geomid/geomid"
	"github.com/stretchr/testify/assert"
)

func TestModule_RoundTrip(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	id := Module(RightClam, 7, 3, 15)
	assert.True(t, id.IsValid())
	assert.True(t, IsSMRD(id))
	assert.Equal(t, RightClam, GetModuleClam(id))
	assert.Equal(t, 7, GetModuleYoke(id))
	assert.Equal(t, 3, GetModuleLayer(id))
	assert.Equal(t, 15, GetModuleSlot(id))
	assert.Equal(t, -1, GetBarNumber(id))
}

func TestBar_RoundTrip(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	for _, clam := range []int{LeftClam, RightClam} {
		for yoke := 0; yoke < 8; yoke++ {
			for layer := 0; layer < 6; layer++ {
				for _, bar := range []int{0, 4, 255} {
					id := Bar(clam, yoke, layer, 2, bar)
					assert.True(t, IsBar(id))
					assert.Equal(t, clam, GetBarClam(id))
					assert.Equal(t, yoke, GetBarYoke(id))
					assert.Equal(t, layer, GetBarLayer(id))
					assert.Equal(t, 2, GetBarSlot(id))
					assert.Equal(t, bar, GetBarNumber(id))
					assert.Equal(t, -1, GetModuleClam(id))
				}
			}
		}
	}
}

func TestOutOfRange(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	// the finder passes -1 when the clam can not be worked out
	assert.Equal(t, geomid.Empty(), Bar(-1, 0, 0, 0, 0))
	assert.Equal(t, geomid.Empty(), Module(-1, 0, 0, 0))
	assert.Equal(t, geomid.Empty(), Bar(0, 16, 0, 0, 0))
	assert.Equal(t, geomid.Empty(), Bar(0, 0, 0, 0, 256))
}
