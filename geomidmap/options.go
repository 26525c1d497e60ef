package geomidmap

import (
	"github.com/forestrie/go-geomid/contenthash"
	"github.com/forestrie/go-geomid/finder"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultTopVolume is the volume the id map is built below
const DefaultTopVolume = "t2k"

type Options struct {
	topVolume       string
	prefix          string
	finders         finder.Factory
	source          Source
	geometryLookup  GeometryLookup
	alignmentLookup AlignmentLookup
	registerer      prometheus.Registerer
}

type Option func(*Options)

func defaultOptions() Options {
	return Options{
		topVolume: DefaultTopVolume,
		prefix:    contenthash.DefaultPrefix,
		finders:   finder.ND280Finders(),
	}
}

// WithTopVolume names the volume whose first node is the top of every walk
func WithTopVolume(volume string) Option {
	return func(o *Options) {
		o.topVolume = volume
	}
}

// WithPrefix sets the prefix of the geometry names carrying the hash
func WithPrefix(prefix string) Option {
	return func(o *Options) {
		o.prefix = prefix
	}
}

// WithFinders sets the factory making the finders for each map build
func WithFinders(f finder.Factory) Option {
	return func(o *Options) {
		o.finders = f
	}
}

// WithSource provides the store that snapshots are found in by hash
func WithSource(s Source) Option {
	return func(o *Options) {
		o.source = s
	}
}

func WithGeometryLookup(l GeometryLookup) Option {
	return func(o *Options) {
		o.geometryLookup = l
	}
}

func WithAlignmentLookup(l AlignmentLookup) Option {
	return func(o *Options) {
		o.alignmentLookup = l
	}
}

// WithRegisterer registers the engine metrics. Without it the metrics are
// collected but not exported.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *Options) {
		o.registerer = reg
	}
}
