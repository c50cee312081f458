package nsec3

import (
	"fmt"
	"github.com/bokysan/basen/enc"
	"github.com/bokysan/basen/internal/logging"
	"github.com/bokysan/basen/nsec3"
	"github.com/hashicorp/go-multierror"
	"github.com/miekg/dns"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
)

// Command prints the NSEC3 hashed owner name of every name given as argument.
type Command struct {
	Param  string    `yaml:"param" short:"p" long:"param" env:"BASEN_NSEC3_PARAM" description:"NSEC3PARAM fields: '<algorithm> <flags> <iterations> <salt>'" default:"1 0 0 -"`
	Zone   string    `yaml:"zone"  short:"z" long:"zone"                           description:"Zone to append to the hashed label, producing a full owner name"`
	Wire   bool      `yaml:"wire"        long:"wire"                           description:"Also print the NSEC3PARAM RDATA in hex"`
	Output io.Writer `no-flag:"true"`
}

func NewCommand() *Command {
	return &Command{
		Param: "1 0 0 -",
	}
}

func (c *Command) out() io.Writer {
	if c.Output != nil {
		return c.Output
	}
	return os.Stdout
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	param, err := nsec3.ParseParamText(c.Param)
	if err != nil {
		return err
	}
	log.Debugf("Hashing %d names with NSEC3 parameters %v", len(args), param)

	if c.Wire {
		if _, err := fmt.Fprintf(c.out(), "; NSEC3PARAM %s\n", enc.EncodeHex(param.Wire())); err != nil {
			return errors.WithStack(err)
		}
	}

	var errs error
	for _, name := range args {
		hashed, err := param.HashName(name)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		if c.Zone != "" {
			hashed = hashed + "." + dns.Fqdn(c.Zone)
		}
		if _, err := fmt.Fprintf(c.out(), "%s %s\n", hashed, dns.Fqdn(name)); err != nil {
			return errors.WithStack(err)
		}
	}
	return errs
}
