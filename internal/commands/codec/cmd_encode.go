package codec

import (
	"fmt"
	"github.com/bokysan/basen/enc"
	"github.com/bokysan/basen/internal/logging"
	"github.com/pkg/errors"
)

// EncodeCommand prints the encoding of each input, one per line.
type EncodeCommand struct {
	Streams
	Encoding  enc.Encoding `yaml:"encoding"   short:"e" long:"encoding"   env:"BASEN_ENCODING" description:"Encoding to use: base64, base32hex or base16 (hex)" default:"base64"`
	NoNewline bool         `yaml:"no-newline" short:"n" long:"no-newline" description:"Do not print the trailing newline"`
}

func NewEncodeCommand() *EncodeCommand {
	return &EncodeCommand{
		Encoding: enc.Base64,
	}
}

func (c *EncodeCommand) Execute(args []string) error {
	logging.SetupLogging()

	sources, err := c.readSources(args)
	if err != nil {
		return err
	}

	for _, src := range sources {
		text := c.Encoding.Encode(src.data)
		if !c.NoNewline {
			text += "\n"
		}
		if _, err := fmt.Fprint(c.out(), text); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
