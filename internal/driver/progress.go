package driver

// Stage describes a pipeline phase of one file.
type Stage string

const (
	StageLoad    Stage = "load"
	StageParse   Stage = "parse"
	StageResolve Stage = "resolve"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for a file.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// ProgressSink consumes progress events. OnEvent is called from parse
// workers concurrently.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, file string, stage Stage, status Status) {
	if sink != nil {
		sink.OnEvent(Event{File: file, Stage: stage, Status: status})
	}
}

// emitFinal reports the outcome of every file once the run is over.
func emitFinal(sink ProgressSink, files []FileResult) {
	if sink == nil {
		return
	}
	for i := range files {
		status := StatusDone
		if files[i].Bag.HasErrors() {
			status = StatusError
		}
		emit(sink, files[i].Path, StageResolve, status)
	}
}
