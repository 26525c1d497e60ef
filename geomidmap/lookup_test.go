package geomidmap

import (
	"strings"
	"testing"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-geomid/contenthash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const geometryList = `# first valid date (JST) and hash
2010/01/01 00:00 0000000a-00000002-00000003-00000004-00000005
2009/06/01 09:00 b-2-3-4-5   # the older entry, out of order
short line
2011/13/01 00:00 0000000c-00000002-00000003-00000004-00000005
2012/01/01 00:00 zzzzzzzz-00000002-00000003-00000004-00000005
2012/01/01 00:00 0000000d-00000002-00000003
`

func TestListGeometryLookup(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	l, err := NewListGeometryLookup(logger.Sugar, strings.NewReader(geometryList))
	require.NoError(t, err)
	require.Equal(t, 2, l.Len())

	// the times are Japan standard time
	assert.True(t, l.entries[0].start.Equal(time.Date(2009, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, l.entries[1].start.Equal(time.Date(2009, 12, 31, 15, 0, 0, 0, time.UTC)))

	older := contenthash.Value{0xb, 2, 3, 4, 5}
	newer := contenthash.Value{0xa, 2, 3, 4, 5}
	own := contenthash.Value{1, 1, 1, 1, 1}

	at := func(when time.Time) Event {
		return NewEventRecord(EventContext{Run: 1, TimeStamp: when})
	}
	tests := []struct {
		name  string
		event Event
		want  contenthash.Value
	}{
		{"no event", nil, contenthash.Value{}},
		{"event hash wins", &EventRecord{Hash: own, Ctx: EventContext{TimeStamp: time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC)}}, own},
		{"before every entry", at(time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)), older},
		{"between entries", at(time.Date(2009, 8, 1, 0, 0, 0, 0, time.UTC)), older},
		{"after every entry", at(time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)), newer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.GetHash(tt.event))
		})
	}
}

func TestListGeometryLookup_Empty(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	l, err := NewListGeometryLookup(logger.Sugar, strings.NewReader("# nothing yet\n"))
	require.NoError(t, err)
	assert.False(t, l.GetHash(NewEventRecord(InvalidContext())).Valid())
}
