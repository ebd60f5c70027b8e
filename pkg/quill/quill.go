// Package quill provides an embeddable distraction-free reading view for
// Bubble Tea applications.
//
// Quill shows a text document as a centered column of configurable width
// with symmetric margins and a toggleable status line.
//
// # Basic Usage
//
// Create a model for a file and run it:
//
//	model, err := quill.NewFromFile("essay.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//	p := tea.NewProgram(model, quill.ProgramOptions()...)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Custom Configuration
//
// Use options to customize the view:
//
//	model := quill.New(doc,
//		quill.WithBodyWidth("0.62"),
//		quill.WithMinimumWidth(50),
//		quill.WithTheme("dracula"),
//		quill.WithHideStatusLine(true),
//	)
package quill

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dodorz/quill/internal/app"
	"github.com/dodorz/quill/internal/config"
	"github.com/dodorz/quill/internal/document"
	"github.com/dodorz/quill/internal/input"
	"github.com/dodorz/quill/internal/theme"
)

// Model is the quill model implementing tea.Model.
type Model = app.App

// Document is a loaded text file.
type Document = document.Document

// LoadDocument reads a UTF-8 text file into a Document.
func LoadDocument(path string) (*Document, error) {
	return document.Load(path)
}

// NewDocument builds a Document from in-memory content.
func NewDocument(name, content string) *Document {
	return document.New(name, content)
}

// Options configures a quill instance.
type Options struct {
	// BodyWidth is the configured width in its surface form: a column
	// count ("66") or a fraction of the window ("0.62"). Empty uses the
	// user config or the default.
	BodyWidth string

	// MinimumWidth is the floor below which the body never shrinks.
	// Zero uses the user config or the default.
	MinimumWidth int

	// HideStatusLine starts with the status line hidden.
	HideStatusLine bool

	// Theme is the color theme name (e.g., "dracula", "nord").
	// Leave empty to use standard terminal colors.
	Theme string

	// Width and Height seed the window size before the first resize
	// message arrives (set automatically if 0).
	Width  int
	Height int

	// ReadOnly disables runtime width adjustments.
	ReadOnly bool

	// UserConfig is a custom user configuration. If nil, the config file
	// is loaded, falling back to defaults.
	UserConfig *config.UserConfig
}

// Option is a functional option for configuring quill.
type Option func(*Options)

// WithBodyWidth sets the configured body width ("66" or "0.62").
func WithBodyWidth(spec string) Option {
	return func(o *Options) {
		o.BodyWidth = spec
	}
}

// WithMinimumWidth sets the floor below which the body never shrinks.
func WithMinimumWidth(columns int) Option {
	return func(o *Options) {
		o.MinimumWidth = columns
	}
}

// WithHideStatusLine starts with the status line hidden.
func WithHideStatusLine(hide bool) Option {
	return func(o *Options) {
		o.HideStatusLine = hide
	}
}

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) {
		o.Theme = name
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithReadOnly disables runtime width adjustments.
func WithReadOnly() Option {
	return func(o *Options) {
		o.ReadOnly = true
	}
}

// WithUserConfig sets a custom user configuration.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) {
		o.UserConfig = cfg
	}
}

// New creates a quill model showing doc.
// This is the main entry point for using quill as a library.
func New(doc *Document, opts ...Option) *Model {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}

	app.SetInputHandler(input.HandleInput)

	if options.Theme != "" {
		_ = theme.Initialize(options.Theme)
	}

	userConfig := options.UserConfig
	if userConfig == nil {
		var err error
		userConfig, err = config.LoadUserConfig()
		if err != nil {
			userConfig = config.DefaultConfig()
		}
	}

	userConfig = config.ApplyOverrides(config.Overrides{
		BodyWidth:        options.BodyWidth,
		MinimumBodyWidth: options.MinimumWidth,
		HideStatusLine:   options.HideStatusLine,
	}, userConfig)

	var appOpts []app.Option
	if options.Width > 0 || options.Height > 0 {
		appOpts = append(appOpts, app.WithSize(options.Width, options.Height))
	}
	if options.ReadOnly {
		appOpts = append(appOpts, app.WithReadOnly())
	}

	return app.New(doc, userConfig, appOpts...)
}

// NewFromFile loads path and creates a quill model for it.
func NewFromFile(path string, opts ...Option) (*Model, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	return New(doc, opts...), nil
}

// ProgramOptions returns recommended tea.ProgramOption values for running
// quill:
//
//	p := tea.NewProgram(model, quill.ProgramOptions()...)
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
	}
}

// Config re-exports the config package for customization without importing
// internal packages.
var Config = struct {
	// LoadUserConfig loads the user's configuration file.
	LoadUserConfig func() (*config.UserConfig, error)
	// DefaultConfig returns the default configuration.
	DefaultConfig func() *config.UserConfig
	// GetConfigPath returns the path to the configuration file.
	GetConfigPath func() (string, error)
}{
	LoadUserConfig: config.LoadUserConfig,
	DefaultConfig:  config.DefaultConfig,
	GetConfigPath:  config.GetConfigPath,
}
