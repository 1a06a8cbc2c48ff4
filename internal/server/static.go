// Package server serves the built single-page frontend as static assets,
// over HTTP and, when the certificate pair exists, HTTPS as well. This is
// the portal's only process boundary besides the TUI.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gustavoarielrecha-beep/AJC-POC/internal/config"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/logging"
)

// Static serves cfg.Dir until ctx is cancelled. HTTPS is skipped with a
// warning when the certificate files are missing, matching the original
// deployment behavior.
func Static(ctx context.Context, cfg config.ServeConfig) error {
	log := logging.Get(logging.CategoryServer)

	if info, err := os.Stat(cfg.Dir); err != nil || !info.IsDir() {
		return errors.New("asset directory not found: " + cfg.Dir)
	}
	handler := http.FileServer(http.Dir(cfg.Dir))

	g, ctx := errgroup.WithContext(ctx)

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: handler}
	g.Go(func() error {
		log.Info("http server running", zap.String("addr", cfg.HTTPAddr))
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	var httpsSrv *http.Server
	if certPairExists(cfg.CertFile, cfg.KeyFile) {
		httpsSrv = &http.Server{Addr: cfg.HTTPSAddr, Handler: handler}
		g.Go(func() error {
			log.Info("https server running", zap.String("addr", cfg.HTTPSAddr))
			if err := httpsSrv.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	} else {
		log.Warn("ssl certificates not found, skipping https server",
			zap.String("cert", cfg.CertFile), zap.String("key", cfg.KeyFile))
	}

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
		if httpsSrv != nil {
			_ = httpsSrv.Shutdown(shutdownCtx)
		}
		return nil
	})

	return g.Wait()
}

func certPairExists(certFile, keyFile string) bool {
	if _, err := os.Stat(certFile); err != nil {
		return false
	}
	if _, err := os.Stat(keyFile); err != nil {
		return false
	}
	return true
}
