// Package cmd 定义命令行入口.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yeisme/filedrive/pkg/app"
	"github.com/yeisme/filedrive/pkg/configs"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:     "filedrive",
	Short:   "Multi-tenant file metadata registry with favorites and two-phase delete",
	Version: configs.AppVersion,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.NewApp(configPath).Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".", "config file or directory (searches config.{yaml,json,toml} in the directory)")
	rootCmd.AddCommand(serveCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
