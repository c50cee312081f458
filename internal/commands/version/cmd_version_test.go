package version

import (
	"bytes"
	"github.com/bokysan/basen/internal/version"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_VersionCommand(t *testing.T) {
	defer func(commit string) { version.GitCommit = commit }(version.GitCommit)
	version.GitCommit = "0b5ed7a"

	buf := &bytes.Buffer{}
	cmd := &Command{Output: buf}
	require.NoError(t, cmd.Execute(nil))

	require.Contains(t, buf.String(), "BASEN")
	require.Contains(t, buf.String(), "0b5ed7a")
	require.Contains(t, buf.String(), "base64, base32hex, base16")
}
