package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/forestrie/go-geomid/contenthash"
	"github.com/forestrie/go-geomid/geomstore"
	"github.com/forestrie/go-geomid/geomtree"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/fs"
)

var hash = contenthash.Value{0xc0ffee, 7, 8, 9, 10}

func snapshotFile(t *testing.T) []byte {
	t.Helper()
	wire := func(name string, y float64) geomtree.NodeSpec {
		return geomtree.NewNode(name, geomtree.Vector{0, y, 0}).WithHalfSize(geomtree.Vector{1, 1, 100})
	}
	data, err := geomstore.Encode(&geomtree.Snapshot{Trees: []geomtree.TreeSpec{{
		Name: contenthash.FormatName(contenthash.DefaultPrefix, hash),
		Root: geomtree.NewNode("t2k_1", geomtree.Vector{},
			geomtree.NewNode("Cryostat_1", geomtree.Vector{0, 0, 1000},
				geomtree.NewNode("Drift_1", geomtree.Vector{},
					geomtree.NewNode("XPlane_1", geomtree.Vector{10, 0, 0},
						wire("Wire_1", -5),
						wire("Wire_2", 5),
					),
				),
			).WithHalfSize(geomtree.Vector{500, 500, 500}),
		).WithHalfSize(geomtree.Vector{5000, 5000, 5000}),
	}}})
	require.NoError(t, err)
	return data
}

func TestLoadConfig(t *testing.T) {
	dir := fs.NewDir(t, "geomid-dump",
		fs.WithFile("dump.yaml", "dir: /data/geometry\nfinders: captain\npositions: true\n"),
	)
	defer dir.Remove()
	configPath := dir.Join("dump.yaml")

	tests := []struct {
		name string
		args []string
		want Config
	}{
		{
			name: "defaults",
			want: defaultConfig(),
		},
		{
			name: "from file",
			args: []string{"--config", configPath},
			want: Config{
				Dir: "/data/geometry", Finders: "captain", TopVolume: "t2k",
				LogLevel: "INFO", Positions: true,
			},
		},
		{
			name: "flags win",
			args: []string{"--config", configPath, "--finders", "all", "--hash", "xxxxxxxx-1-2-3-4"},
			want: Config{
				Dir: "/data/geometry", Hash: "xxxxxxxx-1-2-3-4", Finders: "all", TopVolume: "t2k",
				LogLevel: "INFO", Positions: true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loadConfig(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := loadConfig([]string{"--config", dir.Join("missing.yaml")})
	assert.Error(t, err)
	_, err = loadConfig([]string{"-h"})
	assert.ErrorIs(t, err, pflag.ErrHelp)
}

func TestFindersFor(t *testing.T) {
	for _, name := range []string{"captain", "nd280", "all"} {
		f, err := findersFor(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, f(), name)
	}
	_, err := findersFor("minerva")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	dir := fs.NewDir(t, "geomid-dump",
		fs.WithFile(contenthash.FileName(hash), "", fs.WithBytes(snapshotFile(t))),
	)
	defer dir.Remove()

	tests := []struct {
		name string
		args []string
	}{
		{"by hash", []string{"--dir", dir.Path(), "--hash", hash.String()}},
		{"by partial hash", []string{"--dir", dir.Path(), "--hash", "00c0ffee-xxxxxxxx-xxxxxxxx-xxxxxxxx-xxxxxxxx"}},
		{"by file", []string{"--dir", dir.Path(), "--file", contenthash.FileName(hash)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			args := append(tt.args, "--finders", "captain", "--log-level", "NOOP", "--positions")
			require.NoError(t, run(args, &out))

			text := out.String()
			assert.Contains(t, text, "hash:      "+hash.String())
			assert.Contains(t, text, "alignment: "+contenthash.EmptyAlignment().Value.String())

			var wires []string
			for _, line := range strings.Split(text, "\n") {
				if strings.Contains(line, "cryostat") && strings.Contains(line, "Wire_") {
					wires = append(wires, line)
				}
			}
			require.Len(t, wires, 2)
			assert.Contains(t, wires[0], "(10, -5, 1000)")
		})
	}
}

func TestRun_Errors(t *testing.T) {
	dir := fs.NewDir(t, "geomid-dump")
	defer dir.Remove()

	tests := []struct {
		name string
		args []string
	}{
		{"nothing to load", []string{"--dir", dir.Path()}},
		{"bad finders", []string{"--dir", dir.Path(), "--hash", hash.String(), "--finders", "minerva"}},
		{"bad hash", []string{"--dir", dir.Path(), "--hash", "c0ffee"}},
		{"missing geometry", []string{"--dir", dir.Path(), "--hash", hash.String()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(append(tt.args, "--log-level", "NOOP"), &out)
			assert.Error(t, err)
			assert.Empty(t, out.String())
		})
	}
}
