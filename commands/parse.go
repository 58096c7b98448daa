package commands

import (
	"fmt"
	"strings"

	"github.com/anmitsu/go-shlex"
	"github.com/josephlewis42/jartos/core/config"
)

// Tokenizer splits a command line into tokens.
type Tokenizer func(line string) ([]string, error)

// SplitSpaces splits on every single space, so runs of spaces produce empty
// tokens.
func SplitSpaces(line string) ([]string, error) {
	return strings.Split(line, " "), nil
}

// SplitShell splits like a POSIX shell, honoring quotes and escapes and
// collapsing whitespace.
func SplitShell(line string) ([]string, error) {
	return shlex.Split(line, true)
}

// TokenizerByName returns the tokenizer for a configuration value.
func TokenizerByName(name string) (Tokenizer, error) {
	switch name {
	case config.TokenizerSplit, "":
		return SplitSpaces, nil
	case config.TokenizerShell:
		return SplitShell, nil
	default:
		return nil, fmt.Errorf("unknown tokenizer %q", name)
	}
}

// Invocation is a parsed command line.
type Invocation struct {
	Spec *Spec
	// Tokens holds every token including the command name.
	Tokens []string
	// Args holds the tokens after the command name.
	Args []string
}

// Parse tokenizes a line and checks it against its command's arguments.
//
// The returned Invocation holds the tokens even when err is non-nil so
// callers can log what was attempted.
func Parse(line string, tokenize Tokenizer) (Invocation, error) {
	if strings.TrimSpace(line) == "" {
		return Invocation{}, ErrEmptyLine
	}
	if tokenize == nil {
		tokenize = SplitSpaces
	}

	tokens, err := tokenize(line)
	switch {
	case err != nil:
		return Invocation{Tokens: []string{line}}, &SyntaxError{Err: err}
	case len(tokens) == 0:
		return Invocation{}, ErrEmptyLine
	}

	inv := Invocation{Tokens: tokens, Args: tokens[1:]}
	spec, ok := Lookup(strings.ToLower(tokens[0]))
	if !ok {
		return inv, &UnknownCommandError{Name: tokens[0]}
	}
	inv.Spec = spec

	if len(inv.Args) < spec.MinArgs {
		return inv, &UsageError{Usage: spec.Usage}
	}
	for i, keyword := range spec.Keywords {
		if keyword != "" && inv.Args[i] != keyword {
			return inv, &UsageError{Usage: spec.Usage}
		}
	}

	return inv, nil
}
