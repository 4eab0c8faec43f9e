package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivoronin/mobilevet/internal/version"
)

var compareJSON bool

var compareCmd = &cobra.Command{
	Use:   "compare <version-a> <version-b>",
	Short: "Compare two OS versions",
	Long:  `Parse two OS version strings and report whether the first is older, the same, or newer.`,
	Args:  cobra.ExactArgs(2),
	Example: `  mobilevet compare 13.0.4 13-0-4
  mobilevet compare -j 2.0.0 1.9.9`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().BoolVarP(&compareJSON, "json", "j", false, "Output in JSON format")
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, err := version.Parse(args[0])
	if err != nil {
		return err
	}
	b, err := version.Parse(args[1])
	if err != nil {
		return err
	}

	cmp := a.Compare(b)

	if compareJSON {
		result := struct {
			A      string `json:"a"`
			B      string `json:"b"`
			Result int    `json:"result"`
		}{
			A:      a.String(),
			B:      b.String(),
			Result: cmp,
		}
		out, err := json.Marshal(result)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	} else {
		fmt.Printf("%s is %s %s\n", a, compareWord(cmp), b)
	}
	return nil
}

// compareWord maps a three-way comparison result to its verdict phrase.
func compareWord(cmp int) string {
	switch {
	case cmp < 0:
		return "older than"
	case cmp > 0:
		return "newer than"
	}
	return "the same as"
}
