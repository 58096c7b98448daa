package commands

import (
	"fmt"
	"sort"
)

// Kind identifies a command. Kinds are ordered the way help lists them.
type Kind int

const (
	KindDir Kind = iota
	KindMemorySpace
	KindRamSpace
	KindMkdir
	KindRmdir
	KindCd
	KindEcho
	KindType
	KindDelete
	KindRun
	KindTerminate
	KindList
	KindCollect
	KindExit
	KindHelp
)

// Handler runs a command. args excludes the command name.
type Handler func(s *Session, args []string) error

// Spec describes a command and how to call it.
type Spec struct {
	Kind Kind
	// Name is the lowercase word that selects the command.
	Name string
	// MinArgs is the number of arguments required after the name.
	MinArgs int
	// Keywords are literal arguments; a non-empty Keywords[i] must equal
	// args[i].
	Keywords []string
	// Usage is printed when the arguments don't match.
	Usage string
	// Short is the one line description shown by help.
	Short string
	// Doing describes the command's work in fault messages, e.g.
	// "creating directory".
	Doing string
	Run   Handler
}

var registry = make(map[string]*Spec)

// register adds a command, it panics on programming errors.
func register(spec *Spec) {
	switch {
	case spec.Run == nil:
		panic(fmt.Sprintf("command %q has no handler", spec.Name))
	case len(spec.Keywords) > spec.MinArgs:
		panic(fmt.Sprintf("command %q has keywords past its minimum arguments", spec.Name))
	case spec.MinArgs > 0 && spec.Usage == "":
		panic(fmt.Sprintf("command %q takes arguments but has no usage", spec.Name))
	}
	if _, ok := registry[spec.Name]; ok {
		panic(fmt.Sprintf("command %q registered twice", spec.Name))
	}

	registry[spec.Name] = spec
}

// Lookup finds a command by its lowercase name.
func Lookup(name string) (*Spec, bool) {
	spec, ok := registry[name]
	return spec, ok
}

// AllCommands returns every command in help order.
func AllCommands() []*Spec {
	var out []*Spec
	for _, spec := range registry {
		out = append(out, spec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Kind < out[j].Kind
	})
	return out
}

func BytesToHuman(bytes int64) string {
	for _, e := range []struct {
		unit  string
		power int64
	}{
		{"P", 1e15},
		{"T", 1e12},
		{"G", 1e9},
		{"M", 1e6},
		{"K", 1e3},
	} {
		quotient := bytes / e.power
		switch {
		case quotient == 0:
			continue
		case quotient > 10:
			return fmt.Sprintf("%d%s", quotient, e.unit)
		default:
			return fmt.Sprintf("%0.1f%s", float64(bytes)/float64(e.power), e.unit)
		}
	}

	return fmt.Sprintf("%d", bytes)
}
