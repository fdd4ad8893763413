package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	domainerrors "github.com/maksimkurb/ip2networkd/src/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "ip2networkd.toml")
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return configFile
}

func TestLoadConfig_NonExistentFile(t *testing.T) {
	_, err := LoadConfig("/non/existent/file.toml")
	if !domainerrors.HasCode(err, domainerrors.ErrCodeConfig) {
		t.Errorf("Expected config error for non-existent file, got %v", err)
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	configFile := writeConfig(t, `[output
	file_mode = 0o644`)

	if _, err := LoadConfig(configFile); err == nil {
		t.Error("Expected error for invalid TOML")
	}
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	configFile := writeConfig(t, `[output]
file_mod = 0o644`)

	if _, err := LoadConfig(configFile); !domainerrors.HasCode(err, domainerrors.ErrCodeConfig) {
		t.Errorf("Expected config error for unknown key, got %v", err)
	}
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	configFile := writeConfig(t, `[output]
file_mode = 0o640
header = "Generated for {{ifname}}"

[filter]
exclude_interfaces = ["docker*", "veth*"]
exclude_route_protocols = ["bird"]
`)

	config, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected no error for valid config: %v", err)
	}
	if err := config.ValidateConfig(); err != nil {
		t.Fatalf("Expected valid config: %v", err)
	}

	if config.GetConfigFilePath() != configFile {
		t.Errorf("Expected config path %s, got %s", configFile, config.GetConfigFilePath())
	}
	if config.FileMode() != 0o640 {
		t.Errorf("Expected file mode 0640, got %o", config.FileMode())
	}
	if config.DirMode() != os.FileMode(DefaultDirMode) {
		t.Errorf("Expected default dir mode, got %o", config.DirMode())
	}
	if config.Output.Header != "Generated for {{ifname}}" {
		t.Errorf("Unexpected header %q", config.Output.Header)
	}

	rules := config.FilterRules()
	if !reflect.DeepEqual(rules.ExcludeInterfaces, []string{"docker*", "veth*"}) {
		t.Errorf("Unexpected interface exclusions %v", rules.ExcludeInterfaces)
	}
	if !reflect.DeepEqual(rules.ExcludeRouteProtocols, []string{"bird"}) {
		t.Errorf("Unexpected protocol exclusions %v", rules.ExcludeRouteProtocols)
	}
}

func TestLoadConfig_RelativePath(t *testing.T) {
	configFile := writeConfig(t, "")
	dir, name := filepath.Split(configFile)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	defer func() { _ = os.Chdir(wd) }()

	config, err := LoadConfig(name)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !filepath.IsAbs(config.GetConfigFilePath()) {
		t.Errorf("Expected absolute config path, got %s", config.GetConfigFilePath())
	}
}

func TestParseConfig_EmptyUsesDefaults(t *testing.T) {
	config, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if !reflect.DeepEqual(config, DefaultConfig()) {
		t.Errorf("Expected defaults, got %+v", config)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.FileMode() != 0o644 || config.DirMode() != 0o755 {
		t.Errorf("Unexpected default modes %o %o", config.FileMode(), config.DirMode())
	}
	if config.Output.Header != "" {
		t.Errorf("Expected empty default header")
	}
	rules := config.FilterRules()
	if len(rules.ExcludeInterfaces) != 0 || len(rules.ExcludeRouteProtocols) != 0 {
		t.Errorf("Expected no extra filter rules, got %+v", rules)
	}
	if err := config.ValidateConfig(); err != nil {
		t.Errorf("Expected default config to be valid: %v", err)
	}
}

func TestSerializeConfig_RoundTrip(t *testing.T) {
	config := DefaultConfig()
	config.Output.Header = "{{ifname}} ({{mac}})"
	config.Filter.ExcludeInterfaces = []string{"docker*"}
	config.Filter.ExcludeRouteProtocols = []string{"bird", "zebra"}

	buf, err := config.SerializeConfig()
	if err != nil {
		t.Fatalf("SerializeConfig failed: %v", err)
	}

	parsed, err := ParseConfig(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseConfig failed: %v\n%s", err, buf.String())
	}
	if !reflect.DeepEqual(parsed, config) {
		t.Errorf("Round trip mismatch: %+v vs %+v", parsed, config)
	}
}
