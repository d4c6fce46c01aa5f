package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"estimator/internal/config"
	"estimator/internal/pipeline"
	"estimator/internal/pricing"
	"estimator/internal/report"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "parse":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "report file (.txt .csv .pdf .docx .html .xlsx)")
		format := fs.String("format", "text", "text|json|xlsx")
		out := fs.String("out", "", "output path (xlsx format)")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}

		content, err := os.ReadFile(*input)
		must(err)

		catalog := pricing.LoadCatalog(cfg.PricingPath)
		svc := pipeline.NewEstimateService(catalog)
		est := svc.EstimateFile(filepath.Base(*input), content)

		switch *format {
		case "text":
			fmt.Print(report.BuildText(est))
		case "json":
			blob, err := json.MarshalIndent(est, "", "  ")
			must(err)
			fmt.Println(string(blob))
		case "xlsx":
			path := *out
			if strings.TrimSpace(path) == "" {
				path = filepath.Join(cfg.OutputDir, strings.TrimSuffix(filepath.Base(*input), filepath.Ext(*input))+".xlsx")
			}
			must(report.ExportXLSX(est, path))
			fmt.Printf("exported %d items to %s\n", len(est.Items), path)
		default:
			must(fmt.Errorf("unsupported format: %s", *format))
		}
	case "pricing:show":
		catalog := pricing.LoadCatalog(cfg.PricingPath)
		if len(catalog) == 0 {
			fmt.Println("pricing catalog is empty")
			return
		}
		for _, entry := range catalog {
			fmt.Printf("%-30s %12.2f  %s\n", entry.Key, entry.UnitPrice, entry.Source)
		}
	case "pricing:sync":
		svc := pricing.NewSyncService(cfg)
		count, err := svc.Sync(context.Background())
		must(err)
		fmt.Printf("pricing sync complete: %d entries -> %s\n", count, cfg.PricingPath)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`usage: estimator <command> [flags]

commands:
  parse         --input <file> [--format text|json|xlsx] [--out <path>]
  pricing:show  print the loaded price catalog
  pricing:sync  refresh the local pricing file from the price API`)
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
