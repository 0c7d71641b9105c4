/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package operations

import (
	"context"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

//go:generate counterfeiter -o fakes/logger.go -fake-name Logger . Logger

type Logger interface {
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
}

// Server hosts the operations handlers on a gorilla mux router. Handlers
// panicking during a request are recovered and logged.
type Server struct {
	logger     Logger
	router     *mux.Router
	httpServer *http.Server
	addr       string
	listener   net.Listener
}

func newServer(logger Logger, listenAddress string) *Server {
	router := mux.NewRouter()
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(&recoveryLogger{logger: logger}),
		handlers.PrintRecoveryStack(true),
	)

	return &Server{
		logger: logger,
		router: router,
		addr:   listenAddress,
		httpServer: &http.Server{
			Handler:           recovery(router),
			ReadTimeout:       10 * time.Second,
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      2 * time.Minute,
		},
	}
}

// Run implements ifrit.Runner. It serves until a signal is received.
func (s *Server) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	err := s.Start()
	if err != nil {
		return err
	}

	close(ready)

	<-signals
	return s.Stop()
}

func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", s.addr)
	}
	s.listener = listener
	s.addr = listener.Addr().String()

	go s.httpServer.Serve(listener)

	return nil
}

func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}

// Addr returns the bound address once the server has been started, and the
// configured listen address before that.
func (s *Server) Addr() string {
	return s.addr
}

// RegisterHandler routes every method on path to handler.
func (s *Server) RegisterHandler(path string, handler http.Handler) {
	s.router.Handle(path, handler)
}

// Log implements the go-kit log.Logger used by the statsd client.
func (s *Server) Log(keyvals ...interface{}) error {
	s.logger.Warn(keyvals...)
	return nil
}

type recoveryLogger struct {
	logger Logger
}

func (r *recoveryLogger) Println(args ...interface{}) {
	r.logger.Warn(args...)
}
