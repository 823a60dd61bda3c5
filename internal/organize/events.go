package organize

import "github.com/handiism/music-organizer/internal/model"

// Event is one notification in the ordered stream a run emits:
// CountEvent, then either NoticeEvent (empty source) or a series of
// ProgressEvent followed by DoneEvent.
type Event interface {
	event()
}

// CountEvent reports the total number of discovered songs, emitted once
// before per-file processing begins. A Total of zero signals an empty run.
type CountEvent struct {
	Total int
}

// ProgressEvent reports the running completion percentage. Emitted once
// per counted file (moved or errored); collisions do not advance it.
type ProgressEvent struct {
	Percent int
}

// NoticeEvent carries a user-facing message outside the per-file flow,
// such as the empty-source notice.
type NoticeEvent struct {
	Message string
}

// DoneEvent is the terminal event of a non-empty run, carrying the
// accumulated result.
type DoneEvent struct {
	Result *model.RunResult
}

func (CountEvent) event()    {}
func (ProgressEvent) event() {}
func (NoticeEvent) event()   {}
func (DoneEvent) event()     {}
