package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/govalues/bigdec"
)

var rootCmd = &cobra.Command{
	Use:   "decsh",
	Short: "decimal shell",
	Long:  "parse, format, compare and quantize exact decimal values",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt LITERAL...",
	Short: "parse literals and print them canonically",
	Args:  cobra.MinimumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := cmd.Flags().GetBool("eng")
		if err != nil {
			return err
		}
		lower, err := cmd.Flags().GetBool("lower")
		if err != nil {
			return err
		}
		modeName, err := cmd.Flags().GetString("mode")
		if err != nil {
			return err
		}
		mode, err := bigdec.ParseRoundingMode(modeName)
		if err != nil {
			return err
		}

		ctx := bigdec.BaseContext.WithRounding(mode).WithCapitals(!lower)

		for _, arg := range args {
			d, err := bigdec.Parse(arg)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("quantize") {
				exp, err := cmd.Flags().GetInt("quantize")
				if err != nil {
					return err
				}
				d = ctx.Quantize(d, exp)
			}
			if eng {
				fmt.Println(ctx.EngText(d))
			} else {
				fmt.Println(ctx.Text(d))
			}
		}
		return nil
	},
}

var cmpCmd = &cobra.Command{
	Use:   "cmp A B",
	Short: "compare two decimal values",
	Args:  cobra.ExactArgs(2),

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bigdec.Parse(args[0])
		if err != nil {
			return err
		}
		b, err := bigdec.Parse(args[1])
		if err != nil {
			return err
		}
		r, err := a.Cmp(b)
		if err != nil {
			return err
		}
		fmt.Println(r)
		return nil
	},
}

func init() {
	fmtCmd.Flags().Bool("eng", false, "use engineering notation")
	fmtCmd.Flags().Bool("lower", false, "use a lowercase exponent letter")
	fmtCmd.Flags().Int("quantize", 0, "rescale to the given exponent before printing")
	fmtCmd.Flags().String("mode", "half-even", "rounding mode for --quantize")

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(cmpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
