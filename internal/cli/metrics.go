package cli

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/aretw0/winnow/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metricsServer exposes the session counters on /metrics while a session runs.
type metricsServer struct {
	metrics *observability.Metrics
	srv     *http.Server
	addr    string
}

// startMetrics registers the collectors on a private registry and starts serving them.
func startMetrics(addr string, logger *slog.Logger) (*metricsServer, error) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	ms := &metricsServer{
		metrics: m,
		srv:     &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		addr:    ln.Addr().String(),
	}

	go func() {
		logger.Info("metrics server listening", "addr", ms.addr)
		if err := ms.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", "error", err)
		}
	}()
	return ms, nil
}

func (ms *metricsServer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return ms.srv.Shutdown(ctx)
}
