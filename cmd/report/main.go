package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"capex_forecast/pkg/core/capex"
	"capex_forecast/pkg/core/report"
	"capex_forecast/pkg/core/scenario"
	"capex_forecast/pkg/core/sensitivity"
	"capex_forecast/pkg/core/utils"
)

// projectFile is the on-disk project definition. Accepts JSON or Hjson,
// so analysts can keep commented project files.
type projectFile struct {
	Meta       report.ProjectMeta      `json:"meta"`
	Parameters capex.ProjectParameters `json:"parameters"`
}

// fileConfig mirrors config/engine.yaml.
type fileConfig struct {
	Engine      capex.Config          `yaml:"engine"`
	Sensitivity sensitivity.Config    `yaml:"sensitivity"`
	Scenarios   []scenario.Adjustment `yaml:"scenarios"`
	Timelines   []int                 `yaml:"timelines"`
}

func main() {
	projectPath := flag.String("project", "", "Project definition file (json or hjson)")
	configPath := flag.String("config", "config/engine.yaml", "Engine configuration file")
	outPath := flag.String("out", "", "Output markdown path (default: stdout)")
	htmlPath := flag.String("html", "", "Optional HTML output path")
	rng := flag.Float64("range", 0, "Sensitivity range override (fraction, e.g. 0.2)")
	flag.Parse()

	godotenv.Load()

	if *projectPath == "" {
		fmt.Println("Error: -project is required")
		flag.Usage()
		os.Exit(1)
	}

	// 1. Load project definition
	projectData, err := os.ReadFile(*projectPath)
	if err != nil {
		fmt.Printf("[FATAL] Failed to read project file: %v\n", err)
		os.Exit(1)
	}
	var project projectFile
	if err := utils.DecodeLenient(projectData, &project); err != nil {
		fmt.Printf("[FATAL] Failed to parse project file: %v\n", err)
		os.Exit(1)
	}
	if err := capex.ValidateParameters(project.Parameters); err != nil {
		fmt.Printf("[FATAL] Invalid project parameters: %v\n", err)
		os.Exit(1)
	}

	// 2. Load engine configuration
	var cfg fileConfig
	if configData, err := os.ReadFile(*configPath); err != nil {
		fmt.Printf("[WARNING] Failed to read %s: %v\n", *configPath, err)
		fmt.Println("  Falling back to built-in defaults")
	} else if err := yaml.Unmarshal(configData, &cfg); err != nil {
		fmt.Printf("[WARNING] Failed to parse %s: %v\n", *configPath, err)
		cfg = fileConfig{}
	}
	if len(cfg.Scenarios) == 0 {
		cfg.Scenarios = scenario.Defaults()
	}
	if len(cfg.Timelines) == 0 {
		cfg.Timelines = scenario.DefaultTimelines()
	}
	sensRange := *rng
	if sensRange <= 0 {
		sensRange = cfg.Sensitivity.DefaultRange
	}
	if sensRange <= 0 {
		sensRange = 0.20
	}

	engine := capex.NewEngine(cfg.Engine)

	// 3. Run the full analysis
	breakdown := engine.Breakdown(project.Parameters)
	rows := scenario.Matrix(engine, project.Parameters, cfg.Scenarios, cfg.Timelines)

	analyzer := sensitivity.NewAnalyzer(engine, project.Parameters)
	results, err := analyzer.Run(sensitivity.DefaultPerturbations(sensRange))
	if err != nil {
		fmt.Printf("[FATAL] Sensitivity analysis failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("[REPORT] %s: total CapEx %.0f, top driver %s\n",
		project.Meta.Name, breakdown.Total, results[0].Parameter)

	// 4. Build and write the report
	summary := report.Build(project.Meta, breakdown, rows, results)

	if *outPath == "" {
		fmt.Println(summary.Markdown)
	} else {
		if err := os.WriteFile(*outPath, []byte(summary.Markdown), 0644); err != nil {
			fmt.Printf("[FATAL] Failed to write report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("[REPORT] Wrote markdown report to %s\n", *outPath)
	}

	if *htmlPath != "" {
		html, err := report.RenderHTML(summary.Markdown)
		if err != nil {
			fmt.Printf("[FATAL] Failed to render HTML: %v\n", err)
			os.Exit(1)
		}
		if !strings.HasSuffix(*htmlPath, ".html") {
			fmt.Printf("[WARNING] HTML output path %s has no .html extension\n", *htmlPath)
		}
		if err := os.WriteFile(*htmlPath, []byte(html), 0644); err != nil {
			fmt.Printf("[FATAL] Failed to write HTML report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("[REPORT] Wrote HTML report to %s\n", *htmlPath)
	}
}
