package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	tea "charm.land/bubbletea/v2"

	"github.com/dodorz/quill/internal/app"
	"github.com/dodorz/quill/internal/config"
	"github.com/dodorz/quill/internal/document"
	"github.com/dodorz/quill/internal/input"
	"github.com/dodorz/quill/internal/server"
)

// loadConfigWithOverrides resolves the effective configuration: user config
// file, defaults for whatever is missing, CLI flags on top.
func loadConfigWithOverrides() *config.UserConfig {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Printf("Warning: Failed to load config, using defaults: %v", err)
		userConfig = config.DefaultConfig()
	}

	return config.ApplyOverrides(config.Overrides{
		BodyWidth:        bodyWidth,
		MinimumBodyWidth: minWidth,
		HideStatusLine:   hideStatus,
		ASCIIOnly:        asciiOnly,
		ThemeName:        themeName,
	}, userConfig)
}

func runLocal(path string) error {
	userConfig := loadConfigWithOverrides()

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				log.Printf("Warning: failed to close CPU profile file: %v", closeErr)
			}
		}()

		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	if debugMode {
		configPath, _ := config.GetConfigPath()
		log.Printf("Configuration: %s", configPath)
	}

	doc, err := document.Load(path)
	if err != nil {
		return err
	}

	app.SetInputHandler(input.HandleInput)

	p := tea.NewProgram(
		app.New(doc, userConfig),
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func runServe(host, port, keyPath, path string) error {
	userConfig := loadConfigWithOverrides()

	doc, err := document.Load(path)
	if err != nil {
		return err
	}

	app.SetInputHandler(input.HandleInput)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()

	srv, err := server.New(server.Options{
		Host:       host,
		Port:       port,
		KeyPath:    keyPath,
		Doc:        doc,
		UserConfig: userConfig,
	})
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
