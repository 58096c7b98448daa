// Package vostest provides deterministic collaborators for tests.
package vostest

import (
	"errors"

	"github.com/josephlewis42/jartos/core/logger"
	"github.com/josephlewis42/jartos/core/vos"
)

// DefaultCapacity is the capacity of volumes created by NewDeterministicVolumes.
const DefaultCapacity = 1 << 20

// ErrBroken is returned by every operation of BrokenFS.
var ErrBroken = errors.New("device not ready")

type NopEventRecorder struct{}

func (*NopEventRecorder) Record(event logger.LogType) error {
	return nil
}

// EventCollector records every event it sees.
type EventCollector struct {
	Events []logger.LogType
}

func (c *EventCollector) Record(event logger.LogType) error {
	c.Events = append(c.Events, event)
	return nil
}

// NewDeterministicVolumes creates empty in-memory volumes with the given
// labels, defaulting to a single volume "0".
func NewDeterministicVolumes(labels ...string) *vos.Volumes {
	if len(labels) == 0 {
		labels = []string{"0"}
	}

	out := vos.NewVolumes()
	for _, label := range labels {
		if err := out.Mount(vos.NewMemVolume(label, DefaultCapacity)); err != nil {
			panic(err)
		}
	}
	return out
}

// FakeMemory reports fixed memory statistics.
type FakeMemory struct {
	AvailableBytes uint64
	UsedBytes      uint64
	Freed          int
	Err            error

	Collections int
}

var _ vos.Memory = (*FakeMemory)(nil)

func (m *FakeMemory) Available() (uint64, error) {
	return m.AvailableBytes, m.Err
}

func (m *FakeMemory) Used() (uint64, error) {
	return m.UsedBytes, m.Err
}

func (m *FakeMemory) Collect() (int, error) {
	m.Collections++
	return m.Freed, m.Err
}

// PanickingMemory panics on every call.
type PanickingMemory struct{}

var _ vos.Memory = (*PanickingMemory)(nil)

func (PanickingMemory) Available() (uint64, error) { panic("memory controller offline") }
func (PanickingMemory) Used() (uint64, error)      { panic("memory controller offline") }
func (PanickingMemory) Collect() (int, error)      { panic("memory controller offline") }

// PowerSwitch remembers whether it was shut down.
type PowerSwitch struct {
	Off bool
}

var _ vos.Power = (*PowerSwitch)(nil)

func (p *PowerSwitch) Shutdown() {
	p.Off = true
}

// BrokenFS fails every operation with ErrBroken.
type BrokenFS struct{}

var _ vos.FileSystem = (*BrokenFS)(nil)

func (BrokenFS) ListDir(string) ([]string, []string, error) { return nil, nil, ErrBroken }
func (BrokenFS) Mkdir(string) error                         { return ErrBroken }
func (BrokenFS) RemoveAll(string) error                     { return ErrBroken }
func (BrokenFS) DirExists(string) (bool, error)             { return false, ErrBroken }
func (BrokenFS) FileExists(string) (bool, error)            { return false, ErrBroken }
func (BrokenFS) ReadFile(string) ([]byte, error)            { return nil, ErrBroken }
func (BrokenFS) WriteFile(string, []byte) error             { return ErrBroken }
func (BrokenFS) Remove(string) error                        { return ErrBroken }
func (BrokenFS) AvailableFreeSpace(string) (int64, error)   { return 0, ErrBroken }
