package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"

	"github.com/sferrer-dev/petitsplats/internal/config"
	"github.com/sferrer-dev/petitsplats/internal/source"
)

func TestConfigPathCommand(t *testing.T) {
	setupCLITest(t)

	stdout, _, err := executeCommand(t, "config", "path")
	if err != nil {
		t.Fatalf("config path error = %v", err)
	}
	want := filepath.Join(xdg.ConfigHome, "petitsplats", "config.toml") + "\n"
	if stdout != want {
		t.Errorf("config path = %q, want %q", stdout, want)
	}

	custom := filepath.Join(t.TempDir(), "custom.toml")
	stdout, _, err = executeCommand(t, "config", "path", "--config", custom)
	if err != nil {
		t.Fatalf("config path --config error = %v", err)
	}
	if stdout != custom+"\n" {
		t.Errorf("config path --config = %q, want %q", stdout, custom+"\n")
	}
}

func TestConfigSetAndShow(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "petitsplats", "config.toml")

	stdout, _, err := executeCommand(t, "config", "set", "output", "JSON", "--config", path)
	if err != nil {
		t.Fatalf("config set output error = %v", err)
	}
	if stdout != "output = \"json\"\n" {
		t.Errorf("config set output = %q", stdout)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "output = ") || !strings.Contains(string(data), "json") {
		t.Errorf("config file = %q, want output set to json", data)
	}

	stdout, _, err = executeCommand(t, "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}

	var got configView
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("config show output is not JSON: %v\n%s", err, stdout)
	}
	if got.Path != path {
		t.Errorf("Path = %q, want %q", got.Path, path)
	}
	if got.Config.Output != config.OutputJSON {
		t.Errorf("Config.Output = %q, want %q", got.Config.Output, config.OutputJSON)
	}
	if !got.Catalog.Embedded || got.Catalog.Path != source.EmbeddedName {
		t.Errorf("Catalog = %+v, want the built-in catalog", got.Catalog)
	}
}

func TestConfigShowText(t *testing.T) {
	catalog := setupCLITest(t)

	stdout, _, err := executeCommand(t, "config", "show", "--catalog", catalog)
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	for _, want := range []string{"catalog_path: " + catalog, "locale:       fr", "output:       text"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("config show output missing %q, got:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "file not found") {
		t.Errorf("config show reports an existing catalog as missing:\n%s", stdout)
	}
}

func TestConfigSetErrors(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown key", args: []string{"config", "set", "colour", "blue"}, wantErr: `unknown config key "colour"`},
		{name: "invalid output", args: []string{"config", "set", "output", "xml"}, wantErr: `invalid output format "xml"`},
		{name: "missing value", args: []string{"config", "set", "output"}, wantErr: "accepts 2 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, append(tt.args, "--config", path)...)
			if err == nil {
				t.Fatalf("%v should return error", tt.args)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("%v error = %v, want it to contain %q", tt.args, err, tt.wantErr)
			}
			if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
				t.Errorf("%v should not write the config file", tt.args)
			}
		})
	}
}

func TestConfigSetKeepsEnvironmentOutOfFile(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("PETITSPLATS_OUTPUT", "json")

	if _, _, err := executeCommand(t, "config", "set", "locale", "en", "--config", path); err != nil {
		t.Fatalf("config set locale error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if strings.Contains(string(data), "json") {
		t.Errorf("config file = %q, want the PETITSPLATS_OUTPUT override left out", data)
	}
	if !strings.Contains(string(data), "en") {
		t.Errorf("config file = %q, want locale en", data)
	}
}
