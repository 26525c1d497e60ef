// geomid-dump loads a geometry snapshot and prints its content hash,
// alignment and geometry id map.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-geomid/contenthash"
	"github.com/forestrie/go-geomid/geomidmap"
	"github.com/forestrie/go-geomid/geomstore"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	if cfg.Hash == "" && cfg.File == "" {
		return errors.New("one of --hash or --file is required")
	}
	finders, err := findersFor(cfg.Finders)
	if err != nil {
		return err
	}

	logger.New(cfg.LogLevel)
	defer logger.OnExit()
	log := logger.Sugar.WithServiceName("geomid-dump")

	store := geomstore.NewDirStore(log, cfg.Dir)
	m, err := geomidmap.New(log, nil,
		geomidmap.WithSource(store),
		geomidmap.WithFinders(finders),
		geomidmap.WithTopVolume(cfg.TopVolume))
	if err != nil {
		return err
	}

	if cfg.Hash != "" {
		var hash contenthash.Value
		if err := hash.UnmarshalText([]byte(cfg.Hash)); err != nil {
			return err
		}
		m.SetGeometryOverrideHash(hash)
	}
	if cfg.File != "" {
		m.SetGeometryOverrideFile(cfg.File)
	}

	if _, err := m.GetGeometry(context.Background(), nil); err != nil {
		return err
	}
	dump(out, m, cfg.Positions)
	return nil
}

func dump(out io.Writer, m *geomidmap.Manager, positions bool) {
	fmt.Fprintf(out, "geometry:  %s\n", m.Tree().Name())
	fmt.Fprintf(out, "hash:      %s\n", m.GetHash())
	fmt.Fprintf(out, "alignment: %s\n", m.GetAlignmentId().Value)

	for _, e := range m.Entries() {
		fmt.Fprintf(out, "%s %-8s %s", e.Id, e.Id.SubsystemName(), m.GetPath(e.Id))
		if positions {
			if pos, ok := m.GetPosition(e.Id); ok {
				fmt.Fprintf(out, " (%g, %g, %g)", pos[0], pos[1], pos[2])
			}
		}
		fmt.Fprintln(out)
	}
}
