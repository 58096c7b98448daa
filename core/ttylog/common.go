package ttylog

import (
	"io"
	"log"
	"sync"
	"time"

	"github.com/josephlewis42/jartos/core/vos"
)

// LogSink receives log events.
type LogSink func(t *TTYLogEntry) error

// LogSource adapts log readers.
type LogSource interface {
	// Next fetches the next available log entry. It reutrns io.EOF if the source
	// has no more log entries.
	Next() (*TTYLogEntry, error)
}

// NewRealTimePlayback plays back the results in real-time.
// If maxSleep > 0, it's used as the maximum duration to pause.
func NewRealTimePlayback(maxSleep time.Duration, next LogSink) LogSink {
	var once sync.Once
	var prevTimeMicros int64

	return func(logEntry *TTYLogEntry) error {
		once.Do(func() {
			prevTimeMicros = logEntry.TimestampMicros
		})

		delta := logEntry.TimestampMicros - prevTimeMicros
		prevTimeMicros = logEntry.TimestampMicros

		if maxSleep > 0 {
			sleepDuration := time.Duration(delta) * time.Microsecond
			if sleepDuration > maxSleep {
				sleepDuration = maxSleep
			}
			time.Sleep(sleepDuration)
		}

		return next(logEntry)
	}
}

// NewClientOutput writes stdout and stderr to the given writer
func NewClientOutput(w io.Writer) LogSink {
	return func(logEntry *TTYLogEntry) error {
		if event, ok := logEntry.Event.(*IO); ok && event.FD != FDStdin {
			if _, err := w.Write(event.Data); err != nil {
				return err
			}
		}
		return nil
	}
}

// Replay reads a stream of events to a callback.
func Replay(recording LogSource, callback LogSink) (err error) {
	for {
		logEntry, err := recording.Next()
		switch {
		case err == io.EOF:
			return nil
		case err != nil:
			return err
		}

		if err := callback(logEntry); err != nil {
			return err
		}
	}
}

// Recorder is a VIO that copies everything written to stdout and stderr into
// a LogSink. Input is passed through unrecorded so typed passwords never end
// up in recordings.
type Recorder struct {
	*vos.VIOAdapter
	mutex  sync.Mutex
	output LogSink
	now    func() time.Time
	closed bool
}

func (r *Recorder) emit(event Event, eventTime time.Time) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.closed {
		return
	}
	if _, ok := event.(*Close); ok {
		r.closed = true
	}

	if err := r.output(&TTYLogEntry{
		TimestampMicros: eventTime.UnixMicro(),
		Event:           event,
	}); err != nil {
		log.Print(err)
	}
}

func (r *Recorder) recordIO(mockFd FD, data []byte, dest func([]byte) (int, error)) (int, error) {
	eventTime := r.now()
	amount, err := dest(data)
	if amount > 0 {
		// The caller may reuse data after Write returns.
		copied := append([]byte(nil), data[:amount]...)
		r.emit(&IO{FD: mockFd, Data: copied}, eventTime)
	}
	return amount, err
}

// Close ends the recording. It doesn't close the wrapped streams.
func (r *Recorder) Close() error {
	r.emit(&Close{}, r.now())
	return nil
}

var _ vos.VIO = (*Recorder)(nil)

type recorderWriteCloser struct {
	r       *Recorder
	mockFd  FD
	wrapped io.WriteCloser
}

var _ io.WriteCloser = (*recorderWriteCloser)(nil)

func (rc *recorderWriteCloser) Write(p []byte) (int, error) {
	return rc.r.recordIO(rc.mockFd, p, rc.wrapped.Write)
}

func (rc *recorderWriteCloser) Close() error {
	return rc.wrapped.Close()
}

// NewRecorder creates a logger that forwards output events to output.
func NewRecorder(toWrap vos.VIO, output LogSink) *Recorder {
	recorder := &Recorder{
		output: output,
		now:    time.Now,
	}

	recorder.VIOAdapter = vos.NewVIOAdapter(
		toWrap.Stdin(),
		&recorderWriteCloser{mockFd: FDStdout, r: recorder, wrapped: toWrap.Stdout()},
		&recorderWriteCloser{mockFd: FDStderr, r: recorder, wrapped: toWrap.Stderr()},
	)

	return recorder
}
