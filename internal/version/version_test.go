package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = oldVersion, oldCommit, oldDate }()

	Version, GitCommit, BuildDate = "1.2.0", "abc123", "2024-05-01"

	got := String("subcmd")
	assert.Equal(t, "subcmd 1.2.0 (commit abc123, built 2024-05-01, "+
		runtime.GOOS+"/"+runtime.GOARCH+" "+runtime.Version()+")", got)
	assert.False(t, strings.Contains(got, "\n"))
	assert.Equal(t, "1.2.0", Short())
}
