package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/revdash/revdash/internal/config"
	"github.com/revdash/revdash/internal/dashboard"
	"github.com/revdash/revdash/internal/ui"
	appContext "github.com/revdash/revdash/internal/ui/context"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Current.LoadFromFile(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if path := os.Getenv("REVDASH_LOG"); path != "" {
		f, err := tea.LogToFile(path, "debug")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	server := config.Current.Server
	client, err := dashboard.NewClient(server.BaseURL, time.Duration(server.TimeoutMS)*time.Millisecond)
	if err != nil {
		return err
	}

	var analytics dashboard.Analytics = dashboard.NopAnalytics{}
	if server.AnalyticsPath != "" {
		analytics = dashboard.NewHTTPAnalytics(client, server.AnalyticsPath)
	}

	c := appContext.NewAppContext(client, analytics, server.Locale)
	p := tea.NewProgram(ui.New(c), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
