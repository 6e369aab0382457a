package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	apicapex "capex_forecast/pkg/api/capex"
	apiconfig "capex_forecast/pkg/api/config"
	apireport "capex_forecast/pkg/api/report"
	apiscenario "capex_forecast/pkg/api/scenario"
	apisensitivity "capex_forecast/pkg/api/sensitivity"
	"capex_forecast/pkg/core/capex"
	"capex_forecast/pkg/core/scenario"
	"capex_forecast/pkg/core/sensitivity"
)

// fileConfig mirrors config/engine.yaml.
type fileConfig struct {
	Engine      capex.Config          `yaml:"engine"`
	Sensitivity sensitivity.Config    `yaml:"sensitivity"`
	Scenarios   []scenario.Adjustment `yaml:"scenarios"`
	Timelines   []int                 `yaml:"timelines"`
}

func main() {
	// Load environment variables
	godotenv.Load()

	// Load engine configuration; fall back to compiled defaults so the
	// server still starts without a config file.
	var cfg fileConfig
	configData, err := os.ReadFile("config/engine.yaml")
	if err != nil {
		fmt.Printf("[WARNING] Failed to read config/engine.yaml: %v\n", err)
		fmt.Println("  Falling back to built-in defaults")
	} else if err := yaml.Unmarshal(configData, &cfg); err != nil {
		fmt.Printf("[WARNING] Failed to parse config/engine.yaml: %v\n", err)
		fmt.Println("  Falling back to built-in defaults")
		cfg = fileConfig{}
	}
	if cfg.Sensitivity.DefaultRange <= 0 {
		cfg.Sensitivity.DefaultRange = 0.20
	}
	if len(cfg.Scenarios) == 0 {
		cfg.Scenarios = scenario.Defaults()
	}
	if len(cfg.Timelines) == 0 {
		cfg.Timelines = scenario.DefaultTimelines()
	}

	engine := capex.NewEngine(cfg.Engine)

	// CapEx endpoints
	apicapex.InitHandler(engine)
	http.HandleFunc("/api/capex/breakdown", apicapex.HandleBreakdown)
	http.HandleFunc("/api/capex/lcoe", apicapex.HandleLCOE)

	// Sensitivity endpoints
	apisensitivity.InitHandler(engine, cfg.Sensitivity.DefaultRange)
	http.HandleFunc("/api/sensitivity/tornado", apisensitivity.HandleTornado)
	http.HandleFunc("/api/sensitivity/breakeven", apisensitivity.HandleBreakEven)

	// Scenario endpoints
	scenarioHandler := apiscenario.NewHandler(engine, cfg.Scenarios, cfg.Timelines)
	http.HandleFunc("/api/scenario/matrix", scenarioHandler.HandleMatrix)

	// Report endpoints
	reportHandler := apireport.NewHandler(engine, cfg.Scenarios, cfg.Timelines, cfg.Sensitivity.DefaultRange)
	http.HandleFunc("/api/report/summary", reportHandler.HandleSummary)

	// Config endpoints
	configHandler := apiconfig.NewHandler(engine, cfg.Sensitivity, cfg.Scenarios, cfg.Timelines)
	http.HandleFunc("/api/config", configHandler.HandleConfig)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("API server starting on :%s...\n", port)
	fmt.Println("  - POST /api/capex/breakdown")
	fmt.Println("  - POST /api/capex/lcoe")
	fmt.Println("  - POST /api/sensitivity/tornado")
	fmt.Println("  - POST /api/sensitivity/breakeven")
	fmt.Println("  - POST /api/scenario/matrix")
	fmt.Println("  - POST /api/report/summary")
	fmt.Println("  - GET  /api/config")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
