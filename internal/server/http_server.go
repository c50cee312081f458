package server

import (
	"context"
	"fmt"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"net"
	"net/http"
)

// DefaultMaxBodySize limits the size of a single buffer sent to the service.
const DefaultMaxBodySize = 16 << 20

// HttpServer exposes the codecs over HTTP and websockets.
type HttpServer struct {
	Address     string
	MaxBodySize int64

	server   *http.Server
	listener net.Listener
}

func NewHttpServer(address string) *HttpServer {
	return &HttpServer{
		Address:     address,
		MaxBodySize: DefaultMaxBodySize,
	}
}

func (hs *HttpServer) String() string {
	if hs.listener != nil {
		return fmt.Sprintf("http://%v", hs.listener.Addr())
	}
	return fmt.Sprintf("http://%v", hs.Address)
}

// Router builds the request router. It is separate from Startup so the
// handlers can be tested without a listener.
func (hs *HttpServer) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID, // Set Request Id on all requests
		middleware.RealIP,    // Extract actual IP if running behind reverse proxy
		GetRequestLogger(),
		middleware.Recoverer, // Recover from panics without crashing the server
	)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})

	endpoint := &CodecEndpoint{MaxBodySize: hs.MaxBodySize}
	router.Route("/v1/{encoding}", func(r chi.Router) {
		r.Use(endpoint.resolveEncoding)
		r.Post("/encode", endpoint.Encode)
		r.Post("/decode", endpoint.Decode)
		r.Get("/ws", endpoint.Websocket)
	})

	return router
}

// Startup starts listening and serves requests in the background.
func (hs *HttpServer) Startup() error {
	ln, err := net.Listen("tcp", hs.Address)
	if err != nil {
		return errors.Wrapf(err, "Could not listen on %v", hs.Address)
	}
	hs.listener = ln
	hs.server = &http.Server{
		Handler: hs.Router(),
	}

	go func() {
		log.Infof("Starting HTTP server at %v", hs)
		if err := hs.server.Serve(ln); err != http.ErrServerClosed {
			err = errors.WithStack(err)
			log.WithError(err).Errorf("Could not start the server %v", err)
		}
	}()

	return nil
}

// Addr is the address the server listens on, once started.
func (hs *HttpServer) Addr() net.Addr {
	if hs.listener == nil {
		return nil
	}
	return hs.listener.Addr()
}

// Shutdown stops accepting requests and waits for the active ones until ctx is done.
func (hs *HttpServer) Shutdown(ctx context.Context) error {
	if hs.server == nil {
		return nil
	}
	log.Infof("Shutting down %v", hs)
	return errors.WithStack(hs.server.Shutdown(ctx))
}
