package ttylog

// FD identifies the stream an IO event happened on.
type FD int

const (
	FDStdin FD = iota
	FDStdout
	FDStderr
)

// TTYLogEntry is a single event in a terminal recording.
type TTYLogEntry struct {
	TimestampMicros int64
	Event           Event
}

// Event is implemented by IO and Close.
type Event interface {
	isEvent()
}

// IO is data that crossed one of the terminal's streams.
type IO struct {
	FD   FD
	Data []byte
}

func (*IO) isEvent() {}

// Close marks the end of a recording.
type Close struct{}

func (*Close) isEvent() {}
