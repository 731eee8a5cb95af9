// Copyright 2026 The BACS File Automation Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"crypto/tls"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	bacsfile "github.com/jedbites/bacs-file-automation"
	"github.com/jedbites/bacs-file-automation/pkg/batches"
	"github.com/jedbites/bacs-file-automation/pkg/config"
	configadmin "github.com/jedbites/bacs-file-automation/pkg/config/admin"
	"github.com/jedbites/bacs-file-automation/pkg/util"
	"github.com/jedbites/bacs-file-automation/x/route"

	"github.com/gorilla/mux"
	"github.com/moov-io/base/admin"
	"github.com/moov-io/base/http/bind"
)

var (
	httpAddr  = flag.String("http.addr", bind.HTTP("bacsfile"), "HTTP listen address")
	adminAddr = flag.String("admin.addr", bind.Admin("bacsfile"), "Admin HTTP listen address")

	flagConfigFile = flag.String("config", "", "Filepath for config file to load")
	flagLogFormat  = flag.String("log.format", "", "Format for log lines (Options: json, plain)")
)

func main() {
	flag.Parse()

	configFilepath := util.Or(os.Getenv("CONFIG_FILE"), *flagConfigFile)
	cfg, err := config.Load(configFilepath, *flagLogFormat)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	logger := cfg.Logger
	logger.Log("startup", fmt.Sprintf("Starting bacsfile server version %s", bacsfile.Version))

	// Listen for application termination.
	errs := make(chan error)
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errs <- fmt.Errorf("%s", <-c)
	}()

	// Spin up admin HTTP server and optionally override -admin.addr
	if v := util.Or(os.Getenv("HTTP_ADMIN_BIND_ADDRESS"), cfg.Admin.BindAddress); v != "" && v != bind.Admin("bacsfile") {
		*adminAddr = v
	}
	adminServer := admin.NewServer(*adminAddr)
	adminServer.AddVersionHandler(bacsfile.Version) // Setup 'GET /version'
	configadmin.RegisterRoutes(adminServer, cfg)
	go func() {
		logger.Log("admin", fmt.Sprintf("listening on %s", adminServer.BindAddr()))
		if err := adminServer.Listen(); err != nil {
			err = fmt.Errorf("problem starting admin http: %v", err)
			logger.Log("admin", err)
			errs <- err
		}
	}()
	defer adminServer.Shutdown()

	// Create HTTP handler
	handler := mux.NewRouter()
	route.PingRoute(logger, handler)
	batches.NewRouter(logger, cfg).RegisterRoutes(handler)

	// Check to see if our -http.addr flag has been overridden
	if v := util.Or(os.Getenv("HTTP_BIND_ADDRESS"), cfg.Http.BindAddress); v != "" && v != bind.HTTP("bacsfile") {
		*httpAddr = v
	}

	// Create main HTTP server
	serve := &http.Server{
		Addr:    *httpAddr,
		Handler: handler,
		TLSConfig: &tls.Config{
			InsecureSkipVerify:       false,
			PreferServerCipherSuites: true,
			MinVersion:               tls.VersionTLS12,
		},
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	shutdownServer := func() {
		if err := serve.Shutdown(context.TODO()); err != nil {
			logger.Log("shutdown", err)
		}
	}
	defer shutdownServer()

	// Start main HTTP server
	go func() {
		if certFile, keyFile := os.Getenv("HTTPS_CERT_FILE"), os.Getenv("HTTPS_KEY_FILE"); certFile != "" && keyFile != "" {
			logger.Log("startup", fmt.Sprintf("binding to %s for secure HTTP server", *httpAddr))
			if err := serve.ListenAndServeTLS(certFile, keyFile); err != nil {
				logger.Log("exit", err)
			}
		} else {
			logger.Log("startup", fmt.Sprintf("binding to %s for HTTP server", *httpAddr))
			if err := serve.ListenAndServe(); err != nil {
				logger.Log("exit", err)
			}
		}
	}()

	if err := <-errs; err != nil {
		logger.Log("exit", err)
	}
	os.Exit(0)
}
