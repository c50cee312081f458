package server

import (
	"github.com/stretchr/testify/require"
	"os"
	"testing"
	"time"
)

func Test_RunAndInterrupt(t *testing.T) {
	cmd := NewCommand()
	cmd.Listen = "127.0.0.1:0"
	cmd.ShutdownTimeout = time.Second

	interrupted := make(chan os.Signal, 1)
	interrupted <- os.Interrupt
	require.NoError(t, cmd.Run(interrupted))
}

func Test_RunInvalidAddress(t *testing.T) {
	cmd := NewCommand()
	cmd.Listen = "not an address"

	require.Error(t, cmd.Run(make(chan os.Signal)))
}
