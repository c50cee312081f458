package server

import (
	"context"
	"github.com/bokysan/basen/internal/logging"
	"github.com/bokysan/basen/internal/server"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Command runs the HTTP/websocket translation service until interrupted.
type Command struct {
	Listen          string        `yaml:"listen"           short:"L" long:"listen"           env:"BASEN_LISTEN"        description:"Address to listen on" default:"127.0.0.1:8053"`
	MaxBodySize     int64         `yaml:"max-body-size"              long:"max-body-size"    env:"BASEN_MAX_BODY_SIZE" description:"Largest accepted request or websocket message, in bytes" default:"16777216"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout"           long:"shutdown-timeout"                           description:"How long to wait for active requests on shutdown" default:"5s"`
}

func NewCommand() *Command {
	return &Command{
		Listen:          "127.0.0.1:8053",
		MaxBodySize:     server.DefaultMaxBodySize,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Run serves until interrupted receives a value.
func (s *Command) Run(interrupted <-chan os.Signal) error {
	hs := server.NewHttpServer(s.Listen)
	hs.MaxBodySize = s.MaxBodySize
	if err := hs.Startup(); err != nil {
		return err
	}

	<-interrupted

	ctx, cancel := context.WithTimeout(context.Background(), s.ShutdownTimeout)
	defer cancel()
	return hs.Shutdown(ctx)
}

func (s *Command) Execute(args []string) error {
	logging.SetupLogging()

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(interrupted)

	return s.Run(interrupted)
}
