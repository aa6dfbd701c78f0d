package cmd

import (
	"bytes"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/workload"
)

var (
	genSeed        int64
	genCount       int
	genRunFor      int64
	genAlgorithm   string
	genQuantum     int64
	genRate        float64
	genBurstDist   string
	genBurstMin    int64
	genBurstMax    int64
	genBurstMean   float64
	genBurstStdDev float64
	genBurstValue  int64
	genFormat      string
)

// --- schedsim generate ---

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random process description",
	Long:  "Generate a process description with Poisson arrivals and bursts drawn from --burst-dist. Output is written to stdout for piping.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		if !sim.IsValidAlgorithm(genAlgorithm) {
			logrus.Fatalf("Unknown algorithm %q; valid: fcfs, sjf, rr", genAlgorithm)
		}
		desc, err := workload.Generate(generatorSpec())
		if err != nil {
			logrus.Fatalf("Generation failed: %v", err)
		}
		var buf bytes.Buffer
		if err := convertDescription(desc, genFormat, &buf); err != nil {
			logrus.Fatalf("Generation failed: %v", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), buf.String())
	},
}

func generatorSpec() workload.GeneratorSpec {
	return workload.GeneratorSpec{
		Seed:      genSeed,
		Count:     genCount,
		RunFor:    genRunFor,
		Algorithm: sim.Algorithm(genAlgorithm),
		Quantum:   genQuantum,
		Rate:      genRate,
		Burst:     burstDistSpec(genBurstDist),
	}
}

// burstDistSpec maps the --burst-* flags onto the parameters each
// distribution needs. Unknown names are rejected by workload.NewBurstSampler.
func burstDistSpec(dist string) workload.DistSpec {
	spec := workload.DistSpec{Type: dist}
	switch dist {
	case "uniform":
		spec.Params = map[string]float64{"min": float64(genBurstMin), "max": float64(genBurstMax)}
	case "gaussian":
		spec.Params = map[string]float64{
			"mean":    genBurstMean,
			"std_dev": genBurstStdDev,
			"min":     float64(genBurstMin),
			"max":     float64(genBurstMax),
		}
	case "exponential":
		spec.Params = map[string]float64{"mean": genBurstMean}
	case "constant":
		spec.Params = map[string]float64{"value": float64(genBurstValue)}
	}
	return spec
}

func init() {
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "Seed for random process generation")
	generateCmd.Flags().IntVar(&genCount, "processes", 5, "Number of processes")
	generateCmd.Flags().Int64Var(&genRunFor, "runfor", 50, "Run horizon of the description (in ticks)")
	generateCmd.Flags().StringVar(&genAlgorithm, "use", "fcfs", "Scheduling algorithm (fcfs, sjf, rr)")
	generateCmd.Flags().Int64Var(&genQuantum, "quantum", 2, "Round robin quantum (ignored unless --use rr)")
	generateCmd.Flags().Float64Var(&genRate, "rate", 0.5, "Mean process arrivals per tick")
	generateCmd.Flags().StringVar(&genBurstDist, "burst-dist", "uniform", "Burst distribution (uniform, gaussian, exponential, constant)")
	generateCmd.Flags().Int64Var(&genBurstMin, "burst-min", 1, "Minimum burst for uniform and gaussian (in ticks)")
	generateCmd.Flags().Int64Var(&genBurstMax, "burst-max", 10, "Maximum burst for uniform and gaussian (in ticks)")
	generateCmd.Flags().Float64Var(&genBurstMean, "burst-mean", 5, "Mean burst for gaussian and exponential (in ticks)")
	generateCmd.Flags().Float64Var(&genBurstStdDev, "burst-stddev", 2, "Burst standard deviation for gaussian (in ticks)")
	generateCmd.Flags().Int64Var(&genBurstValue, "burst-value", 3, "Fixed burst for constant (in ticks)")
	generateCmd.Flags().StringVar(&genFormat, "format", "text", "Output format (text, yaml)")
	rootCmd.AddCommand(generateCmd)
}
