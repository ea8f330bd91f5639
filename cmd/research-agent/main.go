// research-agent is the crash-resilient research pipeline: an HTTP server
// with a durable session queue (serve), a one-shot CLI runner (run), an MCP
// stdio server (mcp), and API key administration (keys).
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// loadDotEnv loads <configDir>/.env if present. Missing files are fine;
// container deployments inject the environment directly.
func loadDotEnv(configDir string) {
	envPath := filepath.Join(configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Debug("No .env file loaded", "path", envPath, "error", err)
		return
	}
	slog.Info("Loaded environment", "path", envPath)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "research-agent",
		Short:         "Crash-resilient research agent",
		Version:       version.Full(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")

	root.AddCommand(newServeCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newMCPCmd())
	root.AddCommand(newKeysCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
