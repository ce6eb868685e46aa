package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePort(t *testing.T) {
	r := require.New(t)

	port, err := parsePort("21326")
	r.NoError(err)
	r.EqualValues(21326, port)

	for _, bad := range []string{"", "abc", "0", "-1", "65536"} {
		_, err := parsePort(bad)
		r.Error(err, bad)
	}
}

func TestRenderFile(t *testing.T) {
	r := require.New(t)

	file := filepath.Join(t.TempDir(), "tree-data.json")
	r.NoError(os.WriteFile(file, []byte(`{"name":"Game1","timestamp":1000,"containers":[{"name":"Workspace","className":"Folder"}]}`), 0o644))

	var out bytes.Buffer
	root := RootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"render", file})
	r.NoError(root.Execute())

	r.Contains(out.String(), "  Game: Game1\n")
	r.Contains(out.String(), "└── Workspace [Folder]\n")
}

func TestRenderEmptyStore(t *testing.T) {
	r := require.New(t)

	root := RootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"render", "--home", t.TempDir()})
	r.ErrorContains(root.Execute(), "no tree saved")
}

func TestVersion(t *testing.T) {
	r := require.New(t)

	var out bytes.Buffer
	root := RootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	r.NoError(root.Execute())
	r.Equal("treerelay 1.0.0 (N/A)\n", out.String())
}

func TestUnknownLogLevel(t *testing.T) {
	r := require.New(t)

	root := RootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"version", "--log-level", "loud"})
	r.Error(root.Execute())
}
