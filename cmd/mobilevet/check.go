package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivoronin/mobilevet/internal/output"
	"github.com/ivoronin/mobilevet/internal/platform"
	"github.com/ivoronin/mobilevet/internal/version"
)

var (
	checkJSON     bool
	checkPlatform string
	checkMin      string
)

var checkCmd = &cobra.Command{
	Use:   "check <os-version>",
	Short: "Check an OS version against a minimum requirement",
	Long:  `Compare a device OS version against the minimum version required for a platform.`,
	Args:  cobra.ExactArgs(1),
	Example: `  mobilevet check -m 13.0.4 14.2
  mobilevet check -p android -m 10 9.0.0
  mobilevet check -j -p ios -m 15 17.4`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&checkJSON, "json", "j", false, "Output in JSON format")
	checkCmd.Flags().StringVarP(&checkPlatform, "platform", "p", "", "Target platform: ios or android (default ios)")
	checkCmd.Flags().StringVarP(&checkMin, "min", "m", "", "Minimum required OS version")
	_ = checkCmd.MarkFlagRequired("min")
}

func runCheck(cmd *cobra.Command, args []string) error {
	p := platform.Resolve(checkPlatform, platform.IOS.String())
	if !platform.IsValid(p) {
		return fmt.Errorf("unknown platform %q (expected ios or android)", p)
	}

	osVersion, err := version.Parse(args[0])
	if err != nil {
		return err
	}

	minVersion, err := version.Parse(checkMin)
	if err != nil {
		return err
	}

	report := &output.CheckReport{
		Platform:   p,
		OSVersion:  osVersion.String(),
		MinVersion: minVersion.String(),
		Satisfied:  osVersion.SameOrNewer(minVersion),
	}

	format := output.FormatText
	if checkJSON {
		format = output.FormatJSON
	}
	result, err := output.FormatOutput(report, format)
	if err != nil {
		return err
	}
	fmt.Println(result)

	if !report.Satisfied {
		os.Exit(ExitCheckFail)
	}
	return nil
}
