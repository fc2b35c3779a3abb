package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/maastricht-university/word-der/config"
	"github.com/maastricht-university/word-der/logging"
	"github.com/maastricht-university/word-der/orchestrator"
	"github.com/maastricht-university/word-der/transcript"
)

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "wder <reference> <recognized>",
		Short:        "match reference and recognized transcripts to compute word-level speaker error rate",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			for key, name := range map[string]string{
				"output":     "output",
				"report":     "report",
				"markers":    "markers",
				"strict":     "strict",
				"log.level":  "log-level",
				"log.format": "log-format",
			} {
				if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
					return err
				}
			}

			conf, err := cfg.Load(v, configPath)
			if err != nil {
				return err
			}
			log := logging.New(conf.Log, cmd.ErrOrStderr())

			p, err := orchestrator.NewPipeline(conf, log)
			if err != nil {
				return err
			}
			res, err := p.Run(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return orchestrator.PrintSummary(cmd.OutOrStdout(), res)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "path to YAML config file")
	f.StringP("output", "o", "", "output CSV result file, default: none")
	f.String("report", "", "output YAML report file, default: none")
	f.StringSlice("markers", transcript.DefaultMarkers, "speaker marker words")
	f.Bool("strict", false, "fail on blocks without a speaker header instead of skipping them")
	f.String("log-level", "info", "log level: trace|debug|info|warn|error")
	f.String("log-format", "text", "log format: text|json")
	return cmd
}
