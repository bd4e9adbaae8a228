package config

import "testing"

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected zero size defaults, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.Direction != "bottom" {
		t.Fatalf("expected bottom direction default, got %q", cfg.App.Direction)
	}
	if cfg.App.ShowFooter || cfg.Logging.Trace {
		t.Fatalf("expected footer and trace off by default")
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{"GLAZIER_WIDTH=30", "GLAZIER_DIRECTION=top", "GLAZIER_TRACE=1"}
	cfg, err := LoadArgs([]string{"-width", "50", "-options", "a\nb"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 50 {
		t.Fatalf("expected flag to win, got %d", cfg.App.Width)
	}
	if cfg.App.Direction != "top" {
		t.Fatalf("expected env direction, got %q", cfg.App.Direction)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace enabled from env")
	}
	if cfg.App.Options != "a\nb" {
		t.Fatalf("expected options flag, got %q", cfg.App.Options)
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-2"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestValidateDirection(t *testing.T) {
	cfg, err := LoadArgs([]string{"-direction", "left"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected left to validate, got %v", err)
	}

	cfg.App.Direction = "sideways"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for unknown direction")
	}
}

func TestEnvParsingIgnoresMalformedEntries(t *testing.T) {
	env := []string{"", "NOEQUALS", "GLAZIER_HEIGHT=oops", "GLAZIER_FOOTER=true"}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Height != 0 {
		t.Fatalf("expected malformed height ignored, got %d", cfg.App.Height)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer from env")
	}
}
