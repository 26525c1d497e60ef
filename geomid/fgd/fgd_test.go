package fgd

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-geomid/geomid"
	"github.com/stretchr/testify/assert"
)

func TestBar_RoundTrip(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	for _, f := range []int{0, 1} {
		for _, module := range []int{0, 14, 127} {
			for _, layer := range []int{LayerX, LayerY} {
				for _, bar := range []int{0, 191, 4095} {
					id := Bar(f, module, layer, bar)
					assert.True(t, id.IsValid())
					assert.True(t, IsBar(id))
					assert.Equal(t, f, GetBarFGD(id))
					assert.Equal(t, module, GetBarModule(id))
					assert.Equal(t, layer, GetBarLayer(id))
					assert.Equal(t, bar, GetBarNumber(id))
				}
			}
		}
	}
}

func TestGlobal(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	assert.True(t, IsFGD1(FGD1()))
	assert.True(t, IsFGD2(FGD2()))
	assert.False(t, IsFGD1(FGD2()))

	target := Target(1, 5)
	assert.Equal(t, 1, GetTargetFGD(target))
	assert.Equal(t, 5, GetTarget(target))
	assert.Equal(t, -1, GetFGD(target))

	layer := Layer(1, 13, LayerY)
	assert.Equal(t, 1, GetLayerFGD(layer))
	assert.Equal(t, 13, GetLayerModule(layer))
	assert.Equal(t, LayerY, GetLayerNumber(layer))
	assert.Equal(t, -1, GetTarget(layer))
	assert.Equal(t, -1, GetBarModule(layer))
}

func TestOutOfRange(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	tests := []struct {
		name string
		id   geomid.GeometryId
	}{
		{"fgd", FGD(2)},
		{"target fgd", Target(-1, 0)},
		{"layer fgd", Layer(2, 0, 0)},
		{"bar fgd", Bar(2, 0, 0, 0)},
		{"bar module", Bar(0, 128, 0, 0)},
		{"bar layer", Bar(0, 0, 2, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, geomid.Empty(), tt.id)
		})
	}
}
