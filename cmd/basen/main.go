package main

import (
	"fmt"
	"github.com/bokysan/basen/internal/args"
	"github.com/bokysan/basen/internal/commands/codec"
	"github.com/bokysan/basen/internal/commands/nsec3"
	"github.com/bokysan/basen/internal/commands/server"
	"github.com/bokysan/basen/internal/commands/version"
	bnFlags "github.com/bokysan/basen/internal/flags"
	"github.com/bokysan/basen/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Basen is the main executable
type Basen struct {
	parser *flags.Parser
}

// NewBasen will create a new instance of Basen and initialize the parser
func NewBasen() *Basen {
	executablePath := path.Base(os.Args[0])

	bn := &Basen{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	bn.setupGeneral()
	bn.addCommand("version", "Print the version", "Print the application version and exit", &version.Command{})
	bn.addCommand("encode", "Encode data",
		"Encode files (or standard input) as base64, base32hex or base16 text", codec.NewEncodeCommand())
	bn.addCommand("decode", "Decode data",
		"Decode canonical base64, base32hex or base16 text; non-canonical input is rejected", codec.NewDecodeCommand())
	bn.addCommand("nsec3", "Hash owner names",
		"Print the NSEC3 hashed owner names (base32hex) of the given domain names", nsec3.NewCommand())
	bn.addCommand("server", "Run the translation service",
		"Serve encode/decode requests over HTTP and websockets", server.NewCommand())

	return bn
}

// setupGeneral will configure general options
func (bn *Basen) setupGeneral() {
	if _, err := bn.parser.AddGroup("General", "General options", &args.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

func (bn *Basen) addCommand(name, short, long string, data interface{}) {
	_, err := bn.parser.AddCommand(name, short, long, data)
	util.MustErrorNilOrExit(err)
}

// main starts basen and reads the configuration file
func main() {
	basen := NewBasen()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: fmt.Sprintf("Configuration file %s does not exist.", file),
			})
		}

		args.General.ConfigurationFilePath = file
		return bnFlags.NewYamlParser(basen.parser).ParseFile(file)
	}

	_, err := basen.parser.Parse()
	util.MustErrorNilOrExit(err)
}
