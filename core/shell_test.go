package core

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/jartos/commands"
	"github.com/josephlewis42/jartos/core/config"
	"github.com/josephlewis42/jartos/core/logger"
	"github.com/josephlewis42/jartos/core/vos"
	"github.com/josephlewis42/jartos/core/vos/vostest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInput struct {
	line string
	err  error
}

// fakeReader replays scripted input and remembers every prompt shown.
type fakeReader struct {
	inputs  []fakeInput
	prompt  string
	prompts []string
}

var _ LineReader = (*fakeReader)(nil)

func newFakeReader(lines ...string) *fakeReader {
	r := &fakeReader{}
	for _, line := range lines {
		r.inputs = append(r.inputs, fakeInput{line: line})
	}
	return r
}

func (r *fakeReader) thenError(err error) *fakeReader {
	r.inputs = append(r.inputs, fakeInput{err: err})
	return r
}

func (r *fakeReader) SetPrompt(prompt string) {
	r.prompt = prompt
}

func (r *fakeReader) Readline() (string, error) {
	r.prompts = append(r.prompts, r.prompt)
	if len(r.inputs) == 0 {
		return "", io.EOF
	}

	next := r.inputs[0]
	r.inputs = r.inputs[1:]
	return next.line, next.err
}

func (r *fakeReader) ReadPassword(prompt string) ([]byte, error) {
	r.SetPrompt(prompt)
	line, err := r.Readline()
	return []byte(line), err
}

type shellEnv struct {
	*Shell
	out    *bytes.Buffer
	events *vostest.EventCollector
	power  *vostest.PowerSwitch
}

func newShellEnv(t *testing.T, reader LineReader) *shellEnv {
	t.Helper()

	env := &shellEnv{
		out:    &bytes.Buffer{},
		events: &vostest.EventCollector{},
		power:  &vostest.PowerSwitch{},
	}

	session := commands.NewSession(
		vostest.NewDeterministicVolumes(),
		&vostest.FakeMemory{AvailableBytes: 64 << 20},
		env.power,
		env.out)
	session.Events = env.events

	auth := vos.NewStaticAuthenticator(vos.UserList{
		{Username: "jonel", Passwords: []string{"jonel123"}},
	})
	env.Shell = NewShell(session, reader, auth)
	env.Motd = "Welcome to JartOS\n"
	return env
}

func TestShell_LoginRetry(t *testing.T) {
	reader := newFakeReader(
		"bob", "nope",
		"jonel", "jonel123",
		"help",
		"exit",
		"dir")
	env := newShellEnv(t, reader)

	require.NoError(t, env.Run())

	out := env.out.String()
	assert.Contains(t, out, "Welcome to JartOS\nLOGIN TO PROCEED : \n")
	assert.Contains(t, out, "Login failed. Invalid username or password. Try again.\n")
	assert.Contains(t, out, "Login successful. Welcome, jonel!\n")
	assert.Contains(t, out, "Welcome to the terminal! Type 'help' for a list of commands.\n")
	assert.Contains(t, out, "Available commands:")
	assert.Equal(t, "jonel", env.Username())

	// Input after exit is never read.
	assert.Len(t, reader.inputs, 1)
	assert.True(t, env.power.Off)

	assert.Equal(t, []string{
		"Enter your username: ",
		"Enter your password: ",
		"Enter your username: ",
		"Enter your password: ",
		`0:\> `,
		`0:\> `,
	}, reader.prompts)

	var logins []*logger.LoginAttempt
	for _, event := range env.events.Events {
		if login, ok := event.(*logger.LoginAttempt); ok {
			logins = append(logins, login)
		}
	}
	assert.Equal(t, []*logger.LoginAttempt{
		{Username: "bob", Result: logger.OperationResultFailure},
		{Username: "jonel", Result: logger.OperationResultSuccess},
	}, logins)
}

func TestShell_EOFDuringLogin(t *testing.T) {
	env := newShellEnv(t, newFakeReader("jonel"))

	require.NoError(t, env.Run())
	assert.NotContains(t, env.out.String(), "Welcome to the terminal!")
	assert.Empty(t, env.Username())
	assert.False(t, env.power.Off)
}

func TestShell_EOFEndsLoop(t *testing.T) {
	env := newShellEnv(t, newFakeReader("jonel", "jonel123", "mkdir docs"))

	require.NoError(t, env.Run())
	assert.Contains(t, env.out.String(), "Directory 'docs' created successfully.\n")
	assert.False(t, env.power.Off)
}

func TestShell_PromptFollowsCwd(t *testing.T) {
	reader := newFakeReader("jonel", "jonel123", "mkdir docs", "cd docs", "cd ..")
	env := newShellEnv(t, reader)

	require.NoError(t, env.Run())
	assert.Equal(t, []string{`0:\> `, `0:\> `, `0:\docs> `, `0:\> `}, reader.prompts[2:])
}

func TestShell_InterruptAbandonsLine(t *testing.T) {
	reader := newFakeReader("jonel", "jonel123").thenError(readline.ErrInterrupt)
	reader.inputs = append(reader.inputs, fakeInput{line: "exit"})
	env := newShellEnv(t, reader)

	require.NoError(t, env.Run())
	assert.True(t, env.power.Off)
}

func TestShell_InterruptDuringLogin(t *testing.T) {
	env := newShellEnv(t, newFakeReader("jonel").thenError(readline.ErrInterrupt))

	require.NoError(t, env.Run())
	assert.NotContains(t, env.out.String(), "Welcome to the terminal!")
}

func TestShell_ReaderError(t *testing.T) {
	broken := errors.New("terminal hung up")
	env := newShellEnv(t, newFakeReader("jonel", "jonel123").thenError(broken))

	assert.ErrorIs(t, env.Run(), broken)
}

func TestShell_UsesConfiguredUsers(t *testing.T) {
	cfg := config.Default()
	cfg.Users = []config.User{{Username: "ada", Passwords: []string{"lovelace"}}}

	env := newShellEnv(t, newFakeReader("jonel", "jonel123", "ada", "lovelace"))
	env.Auth = vos.NewStaticAuthenticator(cfg)

	require.NoError(t, env.Run())
	assert.Contains(t, env.out.String(), "Login failed.")
	assert.Contains(t, env.out.String(), "Login successful. Welcome, ada!\n")
}
