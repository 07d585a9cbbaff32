package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/api"
	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/config"
	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/core"
	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/factory"
	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/logger"
)

// terminationSignals stop the accept loop.
var terminationSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
}

var rootCommand = &cobra.Command{
	Use:   "webserver [port]",
	Short: "Serve the working directory over HTTP/1.0",
	Long: `Serve files from the working directory over HTTP/1.0.

Each connection carries a single GET request. "/" returns an index of the
serving root; any other path returns the named file or a 404 page. The port
defaults to 6789.`,
	Args:         cobra.MaximumNArgs(1),
	Run:          mainify(rootMain),
	SilenceUsage: true,
}

var rootConfiguration struct {
	// configPath is the optional TOML or YAML configuration file.
	configPath string
}

func init() {
	registerFlags(rootCommand.Flags())
}

func registerFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&rootConfiguration.configPath, "config", "c", "", "Load configuration from a TOML or YAML file")
}

// mainify wraps an entry point returning an error so that deferred cleanup
// runs before the process exits.
func mainify(entry func(*cobra.Command, []string) error) func(*cobra.Command, []string) {
	return func(command *cobra.Command, arguments []string) {
		if err := entry(command, arguments); err != nil {
			fatal(err)
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(color.Error, color.RedString("Error:"), err)
	os.Exit(1)
}

func rootMain(_ *cobra.Command, arguments []string) error {
	cfg, err := config.Load(rootConfiguration.configPath)
	if err != nil {
		return err
	}
	if len(arguments) == 1 {
		port, err := config.ParsePort(arguments[0])
		if err != nil {
			return err
		}
		cfg.Port = port
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Initialize logger
	logger.InitWith(cfg.Debug, cfg.LogFormat)
	logger.Info("Starting webserver...",
		"port", cfg.Port,
		"root", cfg.Root,
		"max_connections", cfg.MaxConnections)

	ctx, stop := signal.NotifyContext(context.Background(), terminationSignals...)
	defer stop()

	source, err := factory.NewSourceFactory(cfg).Create()
	if err != nil {
		return err
	}
	handler := factory.NewHandlerFactory(cfg).Create(source)

	// Start health server (optional)
	var healthServer *api.HealthServer
	if cfg.HealthServerPort != "" {
		healthServer = api.NewHealthServer(":"+cfg.HealthServerPort, handler.Stats)
		healthServer.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			healthServer.Stop(shutdownCtx)
		}()
		logger.Info("Health server started", "port", cfg.HealthServerPort)
	}

	// Start TCP listener
	listener, err := core.Listen(cfg.Port, cfg.MaxConnections)
	if err != nil {
		logger.Error("Failed to start listener", "port", cfg.Port, "error", err)
		return err
	}
	logger.Info("Listening", "addr", listener.Addr().String())

	server := &core.Server{
		Listener:          listener,
		ConnectionHandler: handler,
		Executor:          core.GoExecutor,
	}

	if healthServer != nil {
		healthServer.SetReady(true)
	}

	// Start serving (blocking)
	err = server.Serve(ctx)
	if healthServer != nil {
		healthServer.SetReady(false)
	}
	logger.Info("Shutting down...")
	return err
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
