// Package main runs routerd, a small demo/debug process that wires a
// group coordinator router across a configurable number of execution
// cores and exposes its fan-out operations over HTTP for inspection.
//
// routerd is not a Kafka broker: it carries no wire codec and no socket
// server for the Kafka protocol itself. What it demonstrates is the
// routing core — internal/router — running against a number of
// in-process cores, each with its own groupmgr.InMemory and
// router.Router over one shared mapper.FNV and shardtable.Table. The
// list_groups fan-out is exercised end to end through /groups; /healthz
// and /metrics report liveness and routing metrics. No other router
// operation is exposed over HTTP.
//
// Configuration is layered through github.com/spf13/cobra flags bound
// to github.com/spf13/viper, so the same settings can come from flags
// or ROUTERD_-prefixed environment variables. No config file is read.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/redpanda-data/grouprouter/internal/groupmgr"
	"github.com/redpanda-data/grouprouter/internal/mapper"
	"github.com/redpanda-data/grouprouter/internal/partition"
	"github.com/redpanda-data/grouprouter/internal/reactor"
	"github.com/redpanda-data/grouprouter/internal/router"
	"github.com/redpanda-data/grouprouter/internal/shardtable"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "routerd",
		Short: "Run the group coordinator router demo process",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), loadConfig(v))
		},
	}

	flags := cmd.Flags()
	flags.Int("cores", 4, "number of execution cores to simulate")
	flags.Int("partitions", 16, "number of partitions in the simulated internal offsets topic")
	flags.Int("submission-limit", 64, "bound on concurrent in-flight cross-core calls")
	flags.String("listen", ":8080", "address the debug/metrics HTTP surface listens on")
	flags.String("log-level", "info", "zap log level: debug, info, warn, error")

	_ = v.BindPFlags(flags)
	v.SetEnvPrefix("ROUTERD")
	v.AutomaticEnv()

	return cmd
}

// config is the small, flat set of settings needed to construct the
// server, sourced from viper so flags and environment variables both
// populate the same fields.
type config struct {
	Cores           int
	Partitions      int
	SubmissionLimit int
	Listen          string
	LogLevel        string
}

func loadConfig(v *viper.Viper) config {
	return config{
		Cores:           v.GetInt("cores"),
		Partitions:      v.GetInt("partitions"),
		SubmissionLimit: v.GetInt("submission-limit"),
		Listen:          v.GetString("listen"),
		LogLevel:        v.GetString("log-level"),
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	return cfg.Build()
}

// inMemoryHandle adapts a fixed set of per-core groupmgr.InMemory
// instances to groupmgr.Handle, the sharded accessor every Router uses
// to reach another core's group manager.
type inMemoryHandle map[reactor.CoreID]*groupmgr.InMemory

func (h inMemoryHandle) On(core reactor.CoreID) groupmgr.Manager {
	return h[core]
}

// buildShardTable assigns every partition of the simulated internal
// offsets topic to a core in round-robin order, standing in for the
// cluster-metadata propagation layer this process does not implement.
func buildShardTable(m mapper.FNV, numCores int) *shardtable.Table {
	table := shardtable.New()
	for i := int32(0); i < m.PartitionCount; i++ {
		pid := partition.ID{Namespace: m.Namespace, Topic: m.Topic, Index: i}
		table.Set(pid, reactor.CoreID(i)%reactor.CoreID(numCores))
	}
	return table
}

func run(ctx context.Context, cfg config) error {
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()
	metrics := router.NewMetrics(reg)

	ex := reactor.NewExecutor(cfg.Cores)
	defer ex.Shutdown()

	sg := reactor.NewSchedulingGroup("routed-work")
	subg := reactor.NewSubmissionGroup(cfg.SubmissionLimit)

	m := mapper.FNV{Namespace: "kafka-internal", Topic: "__consumer_offsets", PartitionCount: int32(cfg.Partitions)}

	handle := make(inMemoryHandle, cfg.Cores)
	routers := make([]*router.Router, cfg.Cores)
	for c := 0; c < cfg.Cores; c++ {
		handle[reactor.CoreID(c)] = groupmgr.NewInMemory()
	}

	// All partitions map to a single shared shard table, built once: the
	// shard table is conceptually per-core but its content is identical
	// across cores in this demo (every core learns the same cluster
	// metadata), so one Table instance is shared by reference.
	shards := buildShardTable(m, cfg.Cores)

	for c := 0; c < cfg.Cores; c++ {
		routers[c] = router.New(reactor.CoreID(c), m, shards, handle, ex, sg, subg, metrics, log.With(zap.Int("core", c)))
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/groups", newGroupsHandler(routers[0], log))

	httpSrv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("routerd listening", zap.String("addr", cfg.Listen), zap.Int("cores", cfg.Cores))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("routerd shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", zap.Error(err))
	}
	log.Info("routerd stopped")
	return nil
}

// newGroupsHandler exposes list_groups as a debug endpoint: GET /groups
// fans the request out across every core and returns the merged,
// deterministically-sorted result. A non-nil dispatch error (one or
// more cores unreachable) is reported alongside whatever partial result
// was collected, rather than silently folded into the error_code field.
func newGroupsHandler(rt *router.Router, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, groups, err := rt.ListGroups(r.Context())
		if err != nil {
			log.Warn("list_groups: one or more cores unreachable", zap.Error(err))
		}
		router.SortListedGroups(groups)

		w.Header().Set("Content-Type", "application/json")
		if encErr := json.NewEncoder(w).Encode(struct {
			ErrorCode      int                    `json:"error_code"`
			Groups         []groupmgr.ListedGroup `json:"groups"`
			DispatchErrors string                 `json:"dispatch_errors,omitempty"`
		}{ErrorCode: int(code), Groups: groups, DispatchErrors: dispatchErrString(err)}); encErr != nil {
			log.Error("error encoding groups response", zap.Error(encErr))
		}
	}
}

func dispatchErrString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
