// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/set"
)

const (
	baseURL               = "/ext"
	serverShutdownTimeout = 10 * time.Second
	readHeaderTimeout     = 10 * time.Second
)

var errAlreadyRegistered = errors.New("route already registered")

type Config struct {
	Host           string
	Port           uint16
	AllowedOrigins []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// Server maintains the HTTP router
type Server struct {
	log      logging.Logger
	router   *mux.Router
	routes   set.Set[string]
	listener net.Listener
	srv      *http.Server
}

// New creates the API server and starts listening on the configured host and
// port. Requests are only served once [Dispatch] is called.
func New(log logging.Logger, config Config) (*Server, error) {
	listenAddress := net.JoinHostPort(config.Host, fmt.Sprint(config.Port))
	listener, err := net.Listen("tcp", listenAddress)
	if err != nil {
		return nil, err
	}

	router := mux.NewRouter()
	log.Info("API created",
		zap.Strings("allowedOrigins", config.AllowedOrigins),
	)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.AllowedOrigins,
		AllowCredentials: true,
	}).Handler(router)
	gzipHandler := gziphandler.GzipHandler(corsHandler)

	return &Server{
		log:      log,
		router:   router,
		routes:   set.Set[string]{},
		listener: listener,
		srv: &http.Server{
			Handler:           gzipHandler,
			ReadTimeout:       config.ReadTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
			WriteTimeout:      config.WriteTimeout,
		},
	}, nil
}

// Addr is the address the server is listening on
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// AddRoute serves [handler] at /ext/[endpoint]
func (s *Server) AddRoute(handler http.Handler, endpoint string) error {
	url := baseURL + "/" + endpoint
	if s.routes.Contains(url) {
		return fmt.Errorf("%w: %s", errAlreadyRegistered, url)
	}
	s.routes.Add(url)

	s.log.Info("adding route",
		zap.String("url", url),
	)
	s.router.Handle(url, handler)
	return nil
}

// Dispatch serves requests until the server is shut down
func (s *Server) Dispatch() error {
	s.log.Info("HTTP API server listening",
		zap.Stringer("address", s.listener.Addr()),
	)
	err := s.srv.Serve(s.listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown this server
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
