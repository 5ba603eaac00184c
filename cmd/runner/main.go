package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"go.uber.org/zap"

	"quote-engine-go/config"
	"quote-engine-go/engine"
	"quote-engine-go/feed"
	"quote-engine-go/infrastructure/logger"
	"quote-engine-go/metrics"
	"quote-engine-go/risk"
	"quote-engine-go/sim"
	"quote-engine-go/strategy"
)

func main() {
	cfgPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	logLevel := flag.String("logLevel", "info", "日志级别")
	logFormat := flag.String("logFormat", "json", "日志格式 json|console")
	tickMs := flag.Int("tickMs", 1000, "sim 模式下的 tick 间隔（毫秒）")
	seed := flag.Int64("seed", time.Now().UnixNano(), "sim 模式随机种子")
	flag.Parse()

	cfg, err := config.LoadWithEnvOverrides(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(logger.Config{
		Level:   *logLevel,
		Outputs: []string{"stdout"},
		Format:  *logFormat,
	})
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Close()

	dispatcher, err := engine.Build(cfg, zlog)
	if err != nil {
		zlog.Fatal("build strategies", zap.Error(err))
	}
	if cfg.Metrics.Addr != "" {
		metrics.StartMetricsServer(cfg.Metrics.Addr)
		zlog.Info("metrics server started", zap.String("addr", cfg.Metrics.Addr))
	}

	runner := &sim.Runner{
		Dispatcher: dispatcher,
		Guard:      risk.LimitGuard{Ceilings: engine.Ceilings(cfg)},
		Sink:       discardSink{},
		Log:        zlog,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_, _ = daemon.SdNotify(false, daemon.SdNotifyReady)
	go watchdogLoop(ctx)
	go watchConfig(ctx, *cfgPath, zlog)

	zlog.Info("quote engine started",
		zap.String("env", cfg.Env),
		zap.String("mode", feedMode(cfg)),
		zap.Int("symbols", len(cfg.Symbols)))

	switch feedMode(cfg) {
	case "ws":
		client := feed.NewClient(cfg.Feed.URL)
		err = client.Run(ctx, func(state strategy.TickState) {
			if err := runner.OnTick(state); err != nil {
				zlog.Warn("tick evaluation degraded", zap.Error(err))
			}
		})
	default:
		err = runSim(ctx, runner, cfg, *seed, time.Duration(*tickMs)*time.Millisecond, zlog)
	}
	if err != nil && ctx.Err() == nil {
		zlog.Error("feed stopped", zap.Error(err))
		os.Exit(1)
	}

	_, _ = daemon.SdNotify(false, daemon.SdNotifyStopping)
	zlog.Info("quote engine stopped")
}

func feedMode(cfg config.AppConfig) string {
	if cfg.Feed.Mode == "" {
		return "sim"
	}
	return cfg.Feed.Mode
}

func runSim(ctx context.Context, r *sim.Runner, cfg config.AppConfig, seed int64, interval time.Duration, zlog *logger.Logger) error {
	gen := sim.NewGenerator(cfg, seed)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.OnTick(gen.Next()); err != nil {
				zlog.Warn("tick evaluation degraded", zap.Error(err))
			}
		}
	}
}

// watchdogLoop 按 systemd 要求的频率发送 keepalive；非 systemd 环境为空操作。
func watchdogLoop(ctx context.Context) {
	usec, err := daemon.SdWatchdogEnabled(false)
	if err != nil || usec == 0 {
		return
	}
	ticker := time.NewTicker(usec / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = daemon.SdNotify(false, daemon.SdNotifyWatchdog)
		}
	}
}

// watchConfig 记录配置变化；策略参数在下次重启生效，不做在线替换。
func watchConfig(ctx context.Context, path string, zlog *logger.Logger) {
	w := config.Watcher{Path: path}
	_ = w.Start(ctx, func(config.AppConfig) {
		zlog.Info("config file changed, restart to apply", zap.String("path", path))
	})
}

// discardSink 干跑：指令只进日志与指标，不外发执行。
type discardSink struct{}

func (discardSink) Submit(strategy.Order) error { return nil }
