package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rana/subcmd/pkg/cli"
	"github.com/rana/subcmd/pkg/props"
)

const dataPath = "/home/user/.subcmd/data.properties"

type session struct {
	fs     afero.Fs
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newSession() *session {
	return &session{fs: afero.NewMemMapFs()}
}

// run executes one invocation and returns its exit status.
func (s *session) run(args ...string) int {
	s.stdout.Reset()
	s.stderr.Reset()
	app := cli.New(Program, Register,
		cli.WithFs(s.fs),
		cli.WithDataFile(dataPath),
		cli.WithWriters(&s.stdout, &s.stderr),
		cli.WithColor(false),
		cli.WithQuiet(true),
	)
	return app.Main(context.Background(), args)
}

func (s *session) stored(t *testing.T) map[string]string {
	t.Helper()
	store, err := props.NewFile(s.fs, dataPath, nil).Load()
	require.NoError(t, err)
	return store.Map()
}

func TestListing(t *testing.T) {
	s := newSession()

	assert.Equal(t, 0, s.run())
	lines := strings.Split(strings.TrimSpace(s.stderr.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Available commands:", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "cfg "))
	assert.True(t, strings.HasPrefix(lines[2], "greet "))
	assert.True(t, strings.HasPrefix(lines[3], "profile "))
	assert.True(t, strings.HasPrefix(lines[4], "version "))
}

func TestGreet(t *testing.T) {
	s := newSession()

	assert.Equal(t, 0, s.run("greet", "--name=Ada"))
	assert.Equal(t, "Hello, Ada!\n", s.stdout.String())
	assert.Equal(t, map[string]string{"greet.count": "1"}, s.stored(t))
}

func TestGreetRemembers(t *testing.T) {
	s := newSession()

	assert.Equal(t, 0, s.run("greet", "--name", "Ada", "--remember"))
	assert.Equal(t, 0, s.run("greet"))
	assert.Equal(t, "Hello, Ada!\n", s.stdout.String())
	assert.Equal(t, map[string]string{
		"greet.name":  "Ada",
		"greet.count": "2",
	}, s.stored(t))
}

func TestGreetWithoutName(t *testing.T) {
	s := newSession()

	assert.Equal(t, 1, s.run("greet"))
	assert.Contains(t, s.stderr.String(), "No name given and none remembered")
	assert.Contains(t, s.stderr.String(), "Usage: subcmd greet [--name NAME] [--remember]")
	assert.Empty(t, s.stored(t))
}

func TestGreetCorruptCount(t *testing.T) {
	s := newSession()
	require.NoError(t, afero.WriteFile(s.fs, dataPath, []byte("greet.count=lots\n"), 0644))

	assert.Equal(t, 1, s.run("greet", "--name=Ada"))
	assert.Contains(t, s.stderr.String(), `Stored greeting count "lots" is not a number`)
}

func TestProfile(t *testing.T) {
	s := newSession()

	assert.Equal(t, 0, s.run("profile"))
	assert.Contains(t, s.stdout.String(), "No profile stored")

	assert.Equal(t, 0, s.run("profile", "--name=Ada", "--email=ada@example.com"))
	assert.Equal(t, 0, s.run("profile", "--name=Grace"))
	assert.Equal(t, map[string]string{
		"profile.name":  "Grace",
		"profile.email": "ada@example.com",
	}, s.stored(t))

	assert.Equal(t, 0, s.run("profile"))
	assert.Equal(t, "email:   ada@example.com\nname:    Grace\n", s.stdout.String())
}

func TestProfileHelp(t *testing.T) {
	s := newSession()

	assert.Equal(t, 0, s.run("help", "profile"))
	out := s.stderr.String()
	assert.True(t, strings.HasPrefix(out, "Usage: subcmd profile [--name NAME] [--email EMAIL]\n"), out)
	assert.Contains(t, out, "--email")
	assert.Contains(t, out, "Fields that are not")
}

func TestCfg(t *testing.T) {
	s := newSession()

	assert.Equal(t, 0, s.run("cfg"))
	assert.Equal(t, "No settings stored\n", s.stdout.String())

	assert.Equal(t, 0, s.run("cfg", "theme.color", "dark"))
	assert.Equal(t, "theme.color set to: dark\n", s.stdout.String())

	assert.Equal(t, 0, s.run("cfg", "theme.color"))
	assert.Equal(t, "dark\n", s.stdout.String())

	assert.Equal(t, 0, s.run("CFG"))
	assert.Contains(t, s.stdout.String(), "theme.color")
	assert.Contains(t, s.stdout.String(), "dark")
}

func TestCfgErrors(t *testing.T) {
	s := newSession()

	assert.Equal(t, 1, s.run("cfg", "theme.color"))
	assert.Contains(t, s.stderr.String(), "theme.color is not set")

	assert.Equal(t, 1, s.run("cfg", "theme", "dark"))
	assert.Contains(t, s.stderr.String(), `Setting "theme" must look like component.field`)
	assert.Empty(t, s.stored(t))

	assert.Equal(t, 1, s.run("cfg", "a.b", "c", "extra"))
	assert.Contains(t, s.stderr.String(), "Usage: subcmd cfg [KEY [VALUE]]")
}

func TestCfgSeparatorKeys(t *testing.T) {
	s := newSession()

	for _, key := range []string{"a=b.c", "#x.y", "!x.y", "a:b.c"} {
		assert.Equal(t, 0, s.run("cfg", key, "v-"+key), key)
	}
	assert.Equal(t, map[string]string{
		"a=b.c": "v-a=b.c",
		"#x.y":  "v-#x.y",
		"!x.y":  "v-!x.y",
		"a:b.c": "v-a:b.c",
	}, s.stored(t))

	assert.Equal(t, 0, s.run("cfg", "#x.y"))
	assert.Equal(t, "v-#x.y\n", s.stdout.String())
}

func TestVersion(t *testing.T) {
	s := newSession()

	assert.Equal(t, 0, s.run("version"))
	out := s.stdout.String()
	assert.True(t, strings.HasPrefix(out, "subcmd dev (commit unknown"), out)
	assert.Equal(t, 1, strings.Count(out, "\n"), out)
}

func TestUnknownCommand(t *testing.T) {
	s := newSession()

	assert.Equal(t, 1, s.run("chat"))
	assert.Contains(t, s.stderr.String(), "Unknown command: chat")
}
