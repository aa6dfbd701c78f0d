package cmd

import (
	"bytes"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim/workload"
)

var convertTarget string

// --- schedsim convert ---

var convertCmd = &cobra.Command{
	Use:   "convert <description>",
	Short: "Convert a description between the text and YAML formats",
	Long:  "Convert a description file to the text or YAML format. Output is written to stdout for piping.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		desc, err := loadDescription(args[0])
		if err != nil {
			logrus.Fatalf("Error: %v", err)
		}
		var buf bytes.Buffer
		if err := convertDescription(desc, convertTarget, &buf); err != nil {
			logrus.Fatalf("Conversion failed: %v", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), buf.String())
	},
}

func convertDescription(desc *workload.Description, target string, buf *bytes.Buffer) error {
	switch target {
	case "yaml":
		return workload.WriteYAML(desc, buf)
	case "text":
		return workload.WriteText(desc, buf)
	default:
		return fmt.Errorf("unknown target format %q; valid: text, yaml", target)
	}
}

func init() {
	convertCmd.Flags().StringVar(&convertTarget, "to", "yaml", "Target format (text, yaml)")
	rootCmd.AddCommand(convertCmd)
}
