package cmd

import (
	"github.com/spf13/cobra"

	"github.com/evmwatch/blockfilter/config"
	"github.com/evmwatch/blockfilter/log"
	"github.com/evmwatch/blockfilter/server"
)

var httpCmd = &cobra.Command{
	Use:   "http",
	Short: "serve the filter over http",
	Run: func(cmd *cobra.Command, args []string) {
		configFile, _ := cmd.Flags().GetString("config")
		config.SetupConfig(configFile)
		log.InitLog(config.Conf.Filter.LogPath)
		srv := server.NewHTTPServer()
		srv.Run()
	},
}

func init() {
	httpCmd.Flags().StringP("config", "c", "", "set config file path")
}
