package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/Alijeyrad/glowdesk_backend/cmd/http"
	systemcmd "github.com/Alijeyrad/glowdesk_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "glowdesk",
	Short: "GlowDesk multi-tenant scheduling backend for beauty salons.",
	Long: `GlowDesk is a multi-tenant scheduling backend for beauty salons.
Each salon manages its masters, services, clients and appointments through
one API, with a public booking page per salon.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
