package geomidmap

import (
	"time"

	"github.com/forestrie/go-geomid/contenthash"
)

// InvalidRun marks a context that has not seen an event
const InvalidRun = -1

// EventContext locates an event in the data taking
type EventContext struct {
	Run       int
	Event     int
	TimeStamp time.Time
}

// InvalidContext is the context before any event has been seen
func InvalidContext() EventContext {
	return EventContext{Run: InvalidRun, Event: InvalidRun}
}

// Valid is true once the context names a run
func (c EventContext) Valid() bool {
	return c.Run != InvalidRun
}

// Event is what the engine needs from the event being processed. The
// engine stamps the hash and alignment in use on it.
type Event interface {
	GeometryHash() contenthash.Value
	SetGeometryHash(contenthash.Value)
	AlignmentID() contenthash.AlignmentID
	SetAlignmentID(contenthash.AlignmentID)
	Context() EventContext
}

// EventRecord is a plain Event
type EventRecord struct {
	Hash      contenthash.Value
	Alignment contenthash.AlignmentID
	Ctx       EventContext
}

func NewEventRecord(ctx EventContext) *EventRecord {
	return &EventRecord{Ctx: ctx}
}

func (e *EventRecord) GeometryHash() contenthash.Value { return e.Hash }
func (e *EventRecord) SetGeometryHash(v contenthash.Value) { e.Hash = v }
func (e *EventRecord) AlignmentID() contenthash.AlignmentID { return e.Alignment }
func (e *EventRecord) SetAlignmentID(aid contenthash.AlignmentID) { e.Alignment = aid }
func (e *EventRecord) Context() EventContext { return e.Ctx }
