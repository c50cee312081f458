package codec

import (
	"github.com/bokysan/basen/enc"
	"github.com/bokysan/basen/internal/logging"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DecodeCommand writes the decoded bytes of each input. Every input is
// decoded even if an earlier one fails; all failures are reported together.
type DecodeCommand struct {
	Streams
	Encoding enc.Encoding `yaml:"encoding" short:"e" long:"encoding" env:"BASEN_ENCODING" description:"Encoding of the input: base64, base32hex or base16 (hex)" default:"base64"`
	To       string       `yaml:"to"       short:"t" long:"to"                               description:"Re-encode the decoded bytes with this encoding instead of writing them raw"`
}

func NewDecodeCommand() *DecodeCommand {
	return &DecodeCommand{
		Encoding: enc.Base64,
	}
}

func (c *DecodeCommand) Execute(args []string) error {
	logging.SetupLogging()

	var to *enc.Encoding
	if c.To != "" {
		e, err := enc.ParseEncoding(c.To)
		if err != nil {
			return err
		}
		to = &e
	}

	sources, err := c.readSources(args)
	if err != nil {
		return err
	}

	var errs error
	for _, src := range sources {
		data, err := c.Encoding.Decode(string(src.data))
		if err != nil {
			log.WithError(err).Debugf("Could not decode %s", src.name)
			errs = multierror.Append(errs, errors.Wrapf(err, "%s", src.name))
			continue
		}
		if to != nil {
			data = []byte(to.Encode(data) + "\n")
		}
		if _, err := c.out().Write(data); err != nil {
			return errors.WithStack(err)
		}
	}
	return errs
}
