package driver

// Stage names the pipeline phase a file is currently in.
type Stage string

const (
	StageQueued  Stage = "queued"
	StageLex     Stage = "lex"
	StageResolve Stage = "resolve"
	StageRewrite Stage = "rewrite"
	StageWrite   Stage = "write"
	StageDone    Stage = "done"
	StageFailed  Stage = "failed"
	StageCached  Stage = "cached"
)

// Event reports one file's progress through the batch.
type Event struct {
	Path  string
	Stage Stage
	Err   string // set for StageFailed
}

// ProgressSink receives events from the directory driver. Implementations
// must be safe for concurrent use; workers emit from multiple goroutines.
type ProgressSink interface {
	OnEvent(evt Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch != nil {
		s.Ch <- evt
	}
}

// NopSink drops every event.
type NopSink struct{}

func (NopSink) OnEvent(Event) {}

// pinnedPathSink forwards events under a fixed path so progress keys match
// the paths the batch was listed with, not the normalized FileSet paths.
type pinnedPathSink struct {
	sink ProgressSink
	path string
}

func (s pinnedPathSink) OnEvent(evt Event) {
	evt.Path = s.path
	s.sink.OnEvent(evt)
}
