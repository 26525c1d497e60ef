package geomidmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-geomid/contenthash"
)

// GeometryLookup chooses the geometry hash for an event when neither the
// overrides nor the input provide a geometry.
type GeometryLookup interface {
	GetHash(event Event) contenthash.Value
}

// GeometryListName is the conventional name of the file read by
// OpenListGeometryLookup.
const GeometryListName = "GEOMETRY.LIST"

const (
	// lines shorter than this cannot hold a date, time and hash
	minListLine = 20

	listTimeLayout = "2006/1/2 15:4"
)

// listZone is the zone the times in a geometry list are written in
var listZone = time.FixedZone("JST", 9*60*60)

type listEntry struct {
	start time.Time
	hash  contenthash.Value
}

// ListGeometryLookup picks hashes from a time ordered list of geometries.
// Each line of the list is
//
//	yyyy/mm/dd hh:mm h0-h1-h2-h3-h4
//
// giving the time from which the geometry applies. '#' starts a comment.
type ListGeometryLookup struct {
	log     *logger.WrappedLogger
	entries []listEntry
}

// NewListGeometryLookup reads a geometry list. Lines that cannot be parsed
// are logged and skipped.
func NewListGeometryLookup(log *logger.WrappedLogger, r io.Reader) (*ListGeometryLookup, error) {
	l := &ListGeometryLookup{log: log}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		if len(line) < minListLine {
			continue
		}
		entry, err := parseListLine(line)
		if err != nil {
			log.Errorf("geometry list: %v", err)
			continue
		}
		l.entries = append(l.entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].start.Before(l.entries[j].start)
	})
	for _, e := range l.entries {
		log.Debugf("geometry %s valid from %s", e.hash, e.start.UTC().Format(time.RFC3339))
	}
	return l, nil
}

// OpenListGeometryLookup reads the geometry list in the named file
func OpenListGeometryLookup(log *logger.WrappedLogger, name string) (*ListGeometryLookup, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewListGeometryLookup(log, f)
}

func parseListLine(line string) (listEntry, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return listEntry{}, fmt.Errorf("could not parse %q", line)
	}
	start, err := time.ParseInLocation(listTimeLayout, fields[0]+" "+fields[1], listZone)
	if err != nil {
		return listEntry{}, fmt.Errorf("could not parse date and time %q: %w", line, err)
	}

	words := strings.Split(fields[2], "-")
	if len(words) != contenthash.Words {
		return listEntry{}, fmt.Errorf("could not parse hash %q", line)
	}
	var hash contenthash.Value
	for i, w := range words {
		v, err := strconv.ParseUint(w, 16, 32)
		if err != nil {
			return listEntry{}, fmt.Errorf("could not parse hash %q: %w", line, err)
		}
		hash[i] = uint32(v)
	}
	return listEntry{start: start, hash: hash}, nil
}

// Len is the number of geometries in the list
func (l *ListGeometryLookup) Len() int { return len(l.entries) }

// GetHash returns the hash the event carries, or else the one in effect at
// the event time. Events before the first entry get the first entry.
func (l *ListGeometryLookup) GetHash(event Event) contenthash.Value {
	if len(l.entries) == 0 || event == nil {
		return contenthash.Value{}
	}
	if h := event.GeometryHash(); h.Valid() {
		return h
	}

	when := event.Context().TimeStamp
	i := sort.Search(len(l.entries), func(i int) bool {
		return !l.entries[i].start.Before(when)
	})
	switch {
	case i == 0:
		return l.entries[0].hash
	case i == len(l.entries):
		return l.entries[len(l.entries)-1].hash
	}
	return l.entries[i-1].hash
}

// lookupHash asks the GeometryLookup for the hash of event. A lookup that
// panics gives no hash.
func (m *Manager) lookupHash(event Event) (hash contenthash.Value) {
	if m.opts.geometryLookup == nil {
		return contenthash.Value{}
	}
	defer func() {
		if r := recover(); r != nil {
			m.log.Errorf("geometry lookup failed: %v", r)
			hash = contenthash.Value{}
		}
	}()
	return m.opts.geometryLookup.GetHash(event)
}
