package util

import (
	"bou.ke/monkey"
	"github.com/bokysan/basen/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"os"
	"sync"
	"testing"
)

// seqMutex makes sure that we are executing the code sequentially, as we are monkey-patching the code in-memory.
var seqMutex sync.Mutex

// patchExit replaces os.Exit until the returned function is called.
func patchExit(t *testing.T) (exited *bool, code *int, restore func()) {
	seqMutex.Lock()
	exited = new(bool)
	code = new(int)
	patch := monkey.Patch(os.Exit, func(i int) {
		*exited = true
		*code = i
	})
	return exited, code, func() {
		patch.Unpatch()
		seqMutex.Unlock()
	}
}

func Test_MustErrorNilOrExit_NilError(t *testing.T) {
	exited, _, restore := patchExit(t)
	defer restore()

	MustErrorNilOrExit(nil)

	require.False(t, *exited, "MustErrorNilOrExit exited the program and it shouldn't have done so.")
}

func Test_MustErrorNilOrExit_FlagsError(t *testing.T) {
	_, code, restore := patchExit(t)
	defer restore()

	err := &flags.Error{
		Type:    flags.ErrShortNameTooLong,
		Message: "Short name too long",
	}

	MustErrorNilOrExit(err)

	require.Equal(t, int(flags.ErrShortNameTooLong), *code, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_Help(t *testing.T) {
	exited, code, restore := patchExit(t)
	defer restore()

	MustErrorNilOrExit(&flags.Error{Type: flags.ErrHelp})

	require.True(t, *exited)
	require.Equal(t, 0, *code)
}

func Test_MustErrorNilOrExit_DecodeError(t *testing.T) {
	_, code, restore := patchExit(t)
	defer restore()

	_, err := enc.DecodeBase64("Zm==")
	MustErrorNilOrExit(errors.Wrap(err, "stdin"))

	require.Equal(t, ErrDecodeBase+int(enc.NonCanonicalPadding), *code)
}

func Test_MustErrorNilOrExit_GenericError(t *testing.T) {
	_, code, restore := patchExit(t)
	defer restore()

	MustErrorNilOrExit(errors.New("demo"))

	require.Equal(t, ErrGeneric, *code, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_ExitCode_MultiError(t *testing.T) {
	_, err1 := enc.DecodeHex("XY")
	_, err2 := enc.DecodeHex("ABC")

	var errs error
	errs = multierror.Append(errs, errors.Wrap(err1, "first"), errors.Wrap(err2, "second"))
	require.Equal(t, ErrDecodeBase+int(enc.InvalidCharacter), ExitCode(errs))
	require.Equal(t, 0, ExitCode(nil))
}
