package configfile

import (
	"os"
	"path/filepath"

	"github.com/Jackevansevo/taggy/internal/domain"
	"github.com/Jackevansevo/taggy/internal/infra/toolrunner"
	"gopkg.in/yaml.v3"
)

const fileName = "taggy.yaml"

// Load reads taggy.yaml from root and applies parsed values on top of
// defaults. A missing file is not an error; the defaults describe the
// conventional Python packaging toolchain.
func Load(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, fileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, &domain.OpError{
			Op:   "configfile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "configfile.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if y.Taggy.Message != "" {
		cfg.Message = y.Taggy.Message
	}
	if y.Taggy.Initial != "" {
		cfg.Initial = y.Taggy.Initial
	}
	if y.Taggy.Publish.Package != "" {
		cfg.Publish.Package = y.Taggy.Publish.Package
	}
	if y.Taggy.Publish.Venv != "" {
		cfg.Publish.VenvDir = y.Taggy.Publish.Venv
	}
	if y.Taggy.Publish.DistDir != "" {
		cfg.Publish.DistDir = y.Taggy.Publish.DistDir
	}
	if y.Taggy.Publish.Remedy != "" {
		cfg.Publish.Remedy = y.Taggy.Publish.Remedy
	}

	if err := overlayCommand(&cfg.Publish.VersionCmd, y.Taggy.Publish.Version); err != nil {
		return cfg, err
	}
	if err := overlayCommand(&cfg.Publish.BuildCmd, y.Taggy.Publish.Build); err != nil {
		return cfg, err
	}
	if err := overlayCommand(&cfg.Publish.UploadCmd, y.Taggy.Publish.Upload); err != nil {
		return cfg, err
	}

	if len(y.Taggy.Lint.Paths) > 0 {
		cfg.Lint.Paths = y.Taggy.Lint.Paths
	}
	if len(y.Taggy.Lint.Checks) > 0 {
		checks := make([][]string, 0, len(y.Taggy.Lint.Checks))
		for _, raw := range y.Taggy.Lint.Checks {
			argv, err := toolrunner.SplitCommand(raw)
			if err != nil {
				return cfg, err
			}
			checks = append(checks, argv)
		}
		cfg.Lint.Checks = checks
	}

	return cfg, nil
}

func overlayCommand(dst *[]string, raw string) error {
	if raw == "" {
		return nil
	}
	argv, err := toolrunner.SplitCommand(raw)
	if err != nil {
		return err
	}
	*dst = argv
	return nil
}

type yamlConfig struct {
	Taggy struct {
		Message string `yaml:"message"`
		Initial string `yaml:"initial"`

		Publish struct {
			Package string `yaml:"package"`
			Venv    string `yaml:"venv"`
			DistDir string `yaml:"dist_dir"`
			Version string `yaml:"version"`
			Build   string `yaml:"build"`
			Upload  string `yaml:"upload"`
			Remedy  string `yaml:"remedy"`
		} `yaml:"publish"`

		Lint struct {
			Paths  []string `yaml:"paths"`
			Checks []string `yaml:"checks"`
		} `yaml:"lint"`
	} `yaml:"taggy"`
}
