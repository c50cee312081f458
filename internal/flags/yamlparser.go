package flags

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
	"reflect"
	"unsafe"
)

// YamlParser fills the option structs of a flags.Parser from a YAML file instead of an INI one.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses options from a yaml formatted file. Top level keys name
// either a command (e.g. "server") or an option group (e.g. "general").
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	// Referenced files are resolved relative to the configuration file.
	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse reads YAML documents from config, one after another. Documents are
// separated by triple dashes (`---`); later documents override earlier ones.
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode document at position %v", i)
		}

		if err = y.parseDocument(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

func (y *YamlParser) parseDocument(obj map[string]interface{}) error {
	for name, val := range obj {
		target, err := y.target(name)
		if err != nil {
			return err
		}

		conv, err := yaml.Marshal(val)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := yaml.Unmarshal(conv, target); err != nil {
			return errors.Wrapf(err, "could not read section '%s'", name)
		}
	}
	return nil
}

// target finds the option struct behind the command or group called name.
func (y *YamlParser) target(name string) (interface{}, error) {
	var group *flags.Group
	if command := y.parser.Find(name); command != nil {
		group = command.Group
	} else if group = y.parser.Group.Find(name); group == nil {
		return nil, errors.WithStack(&flags.Error{
			Type:    flags.ErrUnknownGroup,
			Message: fmt.Sprintf("could not find command or group '%s'", name),
		})
	}

	// go-flags keeps the option struct in an unexported field and offers no
	// accessor for it.
	dataField := reflect.Indirect(reflect.ValueOf(group)).FieldByName("data")
	dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
	return dataField.Elem().Interface(), nil
}
