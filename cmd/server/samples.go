package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/talent-api/internal/samples"
	"github.com/KirkDiggler/talent-api/internal/schema"
)

var sampleKind string

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Print the sample fixtures as YAML",
	Long: `Print the canonical sample requirements, costs, effects, rarities and
talents. Every sample validates under the default schema.`,
	RunE: printSamples,
}

func init() {
	samplesCmd.Flags().StringVar(&sampleKind, "kind", "", "only print one kind: "+strings.Join(sampleKinds(), ", "))
}

func sampleSets() map[string]func() any {
	return map[string]func() any{
		"requirements": func() any { return samples.Requirements() },
		"costs":        func() any { return samples.Costs() },
		"effects":      func() any { return samples.Effects() },
		"rarities":     func() any { return samples.Rarities() },
		"talents":      func() any { return samples.Talents() },
	}
}

func sampleKinds() []string {
	var kinds []string
	for k := range sampleSets() {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func printSamples(_ *cobra.Command, _ []string) error {
	sets := sampleSets()
	if sampleKind != "" {
		build, ok := sets[sampleKind]
		if !ok {
			return fmt.Errorf("unknown kind %q, expected one of %s", sampleKind, strings.Join(sampleKinds(), ", "))
		}
		sets = map[string]func() any{sampleKind: build}
	}

	// the JSON form keeps the wire field names and variant kinds
	out := make(map[string]any, len(sets))
	for kind, build := range sets {
		raw, err := schema.ToRaw(map[string]any{kind: build()})
		if err != nil {
			return err
		}
		out[kind] = raw[kind]
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(out)
}
