package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/dd0wney/cluso-synthgraph/pkg/export"
	"github.com/dd0wney/cluso-synthgraph/pkg/graph"
	"github.com/dd0wney/cluso-synthgraph/pkg/logging"
	"github.com/dd0wney/cluso-synthgraph/pkg/synth"
)

func main() {
	profileArg := flag.String("profile", "tech-company", "Built-in profile name (tech-company, financial-services, healthcare) or path to a YAML profile")
	employees := flag.Int("employees", 250, "Employee count for built-in profiles")
	seed := flag.Int64("seed", 0, "Random seed; 0 derives one from the clock")
	out := flag.String("out", "", "Output file; stdout when empty")
	format := flag.String("format", "jsonl", "Output format: jsonl, graphml, or snapshot")
	quality := flag.Bool("quality", false, "Run the quality assessment after generation")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	logLevel := logging.InfoLevel
	if *verbose {
		logLevel = logging.DebugLevel
	}
	logger := logging.NewJSONLogger(os.Stderr, logLevel)

	profile, err := loadProfile(*profileArg, *employees)
	if err != nil {
		log.Fatalf("Failed to load profile: %v", err)
	}

	g := graph.New()
	opts := []synth.Option{synth.WithLogger(logger)}
	if *seed != 0 {
		opts = append(opts, synth.WithSeed(*seed))
	}
	if *quality {
		opts = append(opts, synth.WithQualityScoring(synth.DefaultScorerConfig()))
	}

	orch, err := synth.NewOrchestrator(profile, g, opts...)
	if err != nil {
		log.Fatalf("Failed to configure generation: %v", err)
	}

	counts, err := orch.Generate()
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	printCounts(counts)

	stats := g.Statistics()
	fmt.Fprintf(os.Stderr, "graph: %d entities, %d relationships, density %.6f, avg degree %.2f\n",
		stats.EntityCount, stats.RelationshipCount, stats.Density, stats.AvgDegree)

	if report := orch.QualityReport(); report != nil {
		fmt.Fprintf(os.Stderr, "quality: overall %.3f (risk %.3f, descriptions %.3f, stacks %.3f, correlation %.3f, encryption %.3f)\n",
			report.Overall, report.RiskMath, report.Description,
			report.TechStack, report.FieldCorrelation, report.Encryption)
	}

	if err := writeOutput(g, *out, *format); err != nil {
		log.Fatalf("Export failed: %v", err)
	}
}

// loadProfile resolves the -profile argument: a known built-in name,
// otherwise a YAML file path.
func loadProfile(arg string, employees int) (*synth.Profile, error) {
	if profile, err := synth.BuiltinProfile(arg, employees); err == nil {
		return profile, nil
	}
	if strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml") {
		return synth.LoadProfile(arg)
	}
	return nil, fmt.Errorf("unknown profile %q: not a built-in name or .yaml path", arg)
}

func printCounts(counts map[string]int) {
	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(os.Stderr, "generated %-16s %d\n", kind, counts[kind])
	}
}

func writeOutput(g *graph.Graph, path, format string) error {
	w := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return export.WriteJSONL(w, g)
	case "graphml":
		return export.WriteGraphML(w, g)
	case "snapshot":
		return export.WriteSnapshot(w, g, time.Now())
	default:
		return fmt.Errorf("unknown format %q (want jsonl, graphml, or snapshot)", format)
	}
}
