package version

import (
	"fmt"
	"github.com/bokysan/basen/enc"
	"github.com/bokysan/basen/internal/version"
	"github.com/k0kubun/go-ansi"
	"io"
	"strings"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the build details and the supported encodings.
type Command struct {
	// Output defaults to the ANSI aware stdout
	Output io.Writer `no-flag:"true"`
}

func (c *Command) String() string {
	return "Version details"
}

func (c *Command) out() io.Writer {
	if c.Output != nil {
		return c.Output
	}
	return ansi.NewAnsiStdout()
}

//goland:noinspection GoUnhandledErrorResult
func (c *Command) Execute(args []string) error {
	out := c.out()
	PrintVersion(out)
	if version.GitBranch != "" {
		fmt.Fprintf(out, DarkGray+" Git branch  "+White+"%+v"+Reset+"\n", version.GitBranch)
	}
	if version.GitState != "" {
		fmt.Fprintf(out, DarkGray+" Git state   "+White+"%+v"+Reset+"\n", version.GitState)
	}
	if version.GoVersion != "" {
		fmt.Fprintf(out, DarkGray+" Go version  "+White+"%+v"+Reset+"\n", version.GoVersion)
	}

	names := make([]string, 0, len(enc.Encodings))
	for _, e := range enc.Encodings {
		names = append(names, e.Name())
	}
	fmt.Fprintf(out, DarkGray+" Encodings   "+White+"%s"+Reset+"\n", strings.Join(names, ", "))
	return nil
}

//goland:noinspection GoUnhandledErrorResult
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, Bold+BackgroundBlue+
		LightGray+" BASEN - canonical base64/base32hex/base16 codec "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+Reset+"\n",
		version.AppVersion(), version.BuildDate, version.GitCommit)
}
