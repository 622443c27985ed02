package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"delivery-track/internal/config"
	dashboardservice "delivery-track/internal/dashboard-service"
	"delivery-track/internal/mylogger"
)

func main() {
	dashCmd := flag.NewFlagSet("dashboard-service", flag.ExitOnError)
	port := dashCmd.String("port", "", "listen port (overrides env)")
	configPath := dashCmd.String("config", "", "path to a YAML config file")

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: app dashboard-service [-port PORT] [-config FILE]")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "dashboard-service":
		dashCmd.Parse(os.Args[2:])
		if err := runDashboard(*port, *configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown service %q\n", os.Args[1])
		os.Exit(1)
	}
}

func runDashboard(port, configPath string) error {
	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.NewFromYAML(configPath)
	} else {
		cfg, err = config.New()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if port != "" {
		cfg.Srv.DashboardServicePort = port
	}

	mylog, err := mylogger.New(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	return dashboardservice.Execute(context.Background(), mylog, cfg)
}
