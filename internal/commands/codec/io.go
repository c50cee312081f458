package codec

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"io/ioutil"
	"os"
)

// Streams are the standard input and output of a command. Tests replace them.
type Streams struct {
	Input  io.Reader `no-flag:"true"`
	Output io.Writer `no-flag:"true"`
}

func (s *Streams) in() io.Reader {
	if s.Input != nil {
		return s.Input
	}
	return os.Stdin
}

func (s *Streams) out() io.Writer {
	if s.Output != nil {
		return s.Output
	}
	return os.Stdout
}

// source is one fully read input together with a name to report errors with.
type source struct {
	name string
	data []byte
}

// readSources reads every file in files, or standard input when there are none.
// "-" also stands for standard input.
func (s *Streams) readSources(files []string) ([]source, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}

	res := make([]source, 0, len(files))
	for _, file := range files {
		var data []byte
		var err error
		if file == "-" {
			data, err = ioutil.ReadAll(s.in())
			file = "stdin"
		} else {
			data, err = ioutil.ReadFile(file)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "could not read %s", file)
		}
		log.Debugf("Read %d bytes from %s", len(data), file)
		res = append(res, source{name: file, data: data})
	}
	return res, nil
}
