package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/evmwatch/blockfilter/config"
	"github.com/evmwatch/blockfilter/filter"
	"github.com/evmwatch/blockfilter/log"
)

var root = &cobra.Command{
	Use:   "blockfilter",
	Short: "propagate monitor matches mined in even-numbered blocks",
	Long: `blockfilter reads one monitor match document from stdin and prints true
when the matched transaction's block number is even, false otherwise. The
false line is printed on evaluation failures too; the exit status is what
tells a determined false apart from an undetermined one.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		configFile, _ := cmd.Flags().GetString("config")
		config.SetupConfig(configFile)
		log.InitLog(config.Conf.Filter.LogPath)

		if err := filter.Run(os.Stdin, os.Stdout); err != nil {
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	root.Flags().StringP("config", "c", "", "set config file path")
	root.AddCommand(httpCmd)
}
