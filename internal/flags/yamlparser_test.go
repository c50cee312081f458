package flags

import (
	"github.com/bokysan/basen/enc"
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

type encodeOptions struct {
	Encoding enc.Encoding `yaml:"encoding" long:"encoding" default:"base64"`
	Wrap     bool         `yaml:"wrap"     long:"wrap"`
}

type generalOptions struct {
	LogFormat string `yaml:"log-format" long:"log-format" default:"text"`
}

func (e *encodeOptions) Execute(args []string) error {
	return nil
}

func newParser(t *testing.T) (*YamlParser, *encodeOptions, *generalOptions) {
	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)

	general := &generalOptions{}
	_, err := parser.AddGroup("General", "General options", general)
	require.NoError(t, err, "Could not add general group")

	encode := &encodeOptions{}
	_, err = parser.AddCommand("encode", "Encode", "Encode data", encode)
	require.NoError(t, err, "Could not add encode command")

	return NewYamlParser(parser), encode, general
}

func Test_EmptyParse(t *testing.T) {
	file := "testdata/empty.yml"

	yamlParser, _, _ := newParser(t)
	err := yamlParser.ParseFile(file)

	require.NoErrorf(t, err, "Parsing not successful: %v", file)
}

func Test_CommandParse(t *testing.T) {
	file := "testdata/general.yml"

	yamlParser, encode, _ := newParser(t)
	err := yamlParser.ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, enc.Base32Hex, encode.Encoding, "Invalid reading of encoding value")
	require.True(t, encode.Wrap, "Invalid reading of boolean value")
}

func Test_MultipleDocuments(t *testing.T) {
	file := "testdata/multi.yml"

	yamlParser, encode, general := newParser(t)
	err := yamlParser.ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, enc.Base16, encode.Encoding, "Later documents should win")
	require.Equal(t, "json", general.LogFormat, "Groups should be found by name")
}

func Test_InvalidNoCommand(t *testing.T) {
	file := "testdata/invalid_no_command.yml"

	yamlParser, _, _ := newParser(t)
	err := yamlParser.ParseFile(file)
	require.Errorf(t, err, "Parsing not successful, expected error but did not get one: %v", file)
}

func Test_InvalidValue(t *testing.T) {
	file := "testdata/invalid_value.yml"

	yamlParser, _, _ := newParser(t)
	err := yamlParser.ParseFile(file)
	require.Error(t, err)
	require.Contains(t, err.Error(), "base91")
}

func Test_MissingFile(t *testing.T) {
	yamlParser, _, _ := newParser(t)
	require.Error(t, yamlParser.ParseFile("testdata/does-not-exist.yml"))
}

func Test_ParseReader(t *testing.T) {
	yamlParser, encode, _ := newParser(t)
	err := yamlParser.Parse(strings.NewReader("encode:\n  encoding: hex\n"))
	require.NoError(t, err)
	require.Equal(t, enc.Base16, encode.Encoding)
}
