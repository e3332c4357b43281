package app

import (
	"errors"
	"fmt"

	"panectl/internal/layout"
	"panectl/internal/store"
	"panectl/internal/surface"
	"panectl/internal/views"
	"panectl/pkg/logging"
)

// ErrUnknownLayout is returned when a name is neither saved nor a preset.
var ErrUnknownLayout = errors.New("unknown layout")

// Services holds the layout store and the view settings shared by the
// commands.
type Services struct {
	Store       *store.Store
	ViewOptions views.Options
}

// InitializeServices opens the layout store named by the configuration.
func InitializeServices(cfg *Config) (*Services, error) {
	st, err := store.Open(cfg.PanectlConfig.Store.Path)
	if err != nil {
		return nil, err
	}
	return &Services{
		Store: st,
		ViewOptions: views.Options{
			MinSize: layout.Size{
				Width:  cfg.PanectlConfig.Layout.MinPaneWidth,
				Height: cfg.PanectlConfig.Layout.MinPaneHeight,
			},
		},
	}, nil
}

// Close releases the layout store.
func (s *Services) Close() error {
	return s.Store.Close()
}

// NewRegistry returns the default views creating nodes in doc.
func (s *Services) NewRegistry(doc *surface.Document) *views.Registry {
	return views.NewDefaultRegistry(doc, s.ViewOptions)
}

// OpenLayout builds a live layout from the saved layout called name, or
// from the preset of that name when nothing is saved under it.
func (s *Services) OpenLayout(name string) (*layout.Root, *views.Registry, error) {
	doc := surface.NewDocument()
	reg := s.NewRegistry(doc)

	d, err := s.Store.Load(name)
	switch {
	case err == nil:
		root, err := layout.RestoreRoot(d, reg.Resolve, doc)
		if err != nil {
			return nil, nil, fmt.Errorf("restoring layout %q: %w", name, err)
		}
		logging.Debug("Services", "Restored saved layout %q", name)
		return root, reg, nil
	case !store.IsNotFound(err):
		return nil, nil, err
	}

	if !views.IsPreset(name) {
		var nf *store.NotFoundError
		if errors.As(err, &nf) && nf.Suggestion != "" {
			return nil, nil, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownLayout, name, nf.Suggestion)
		}
		if hint := views.Suggest(name, views.PresetNames()); hint != "" {
			return nil, nil, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownLayout, name, hint)
		}
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
	b, err := views.Preset(name, reg)
	if err != nil {
		return nil, nil, err
	}
	root, err := layout.NewRoot(b, doc)
	if err != nil {
		return nil, nil, fmt.Errorf("building preset %q: %w", name, err)
	}
	logging.Debug("Services", "Built preset layout %q", name)
	return root, reg, nil
}
