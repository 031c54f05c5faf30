package domain

// Config represents the taggy configuration loaded from taggy.yaml.
type Config struct {
	Message string // tag message template, "{}" is replaced by the new tag
	Initial string // version used when the repository has no tags yet
	Publish PublishConfig
	Lint    LintConfig
}

// PublishConfig drives the publish procedure. Command fields are argv slices;
// the loader splits configured command strings with shell word rules.
type PublishConfig struct {
	Package    string   // package directory, relative to the repo root
	VenvDir    string   // virtualenv directory checked for a bin/ prefix
	DistDir    string   // where the build step writes artifacts
	VersionCmd []string // prints the declared package version
	BuildCmd   []string // builds a source distribution into DistDir
	UploadCmd  []string // invoked once per artifact, file path appended
	Remedy     string   // printed when the upload tool is missing
}

// UploadTool is the executable name whose presence gates the publish run.
func (c PublishConfig) UploadTool() string {
	if len(c.UploadCmd) == 0 {
		return ""
	}
	return c.UploadCmd[0]
}

// LintConfig lists the check commands run over Paths, in order.
type LintConfig struct {
	Paths  []string
	Checks [][]string
}

// DefaultConfig provides sane defaults if taggy.yaml is partially missing.
// The defaults reproduce the conventional Python packaging toolchain.
func DefaultConfig() Config {
	return Config{
		Message: "version {}",
		Initial: "0.1.0",
		Publish: PublishConfig{
			Package:    "taggy",
			VenvDir:    ".venv",
			DistDir:    "dist",
			VersionCmd: []string{"python", "setup.py", "--version"},
			BuildCmd:   []string{"python", "setup.py", "sdist"},
			UploadCmd:  []string{"twine", "upload"},
			Remedy:     "pip install twine",
		},
		Lint: LintConfig{
			Paths: []string{"taggy", "tests"},
			Checks: [][]string{
				{"flake8"},
				{"isort", "--check-only"},
				{"mypy", "--ignore-missing-imports"},
			},
		},
	}
}
