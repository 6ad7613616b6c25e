package commands

import (
	"github.com/macropower/pageid/internal/config"
)

type RootArgs struct {
	logLevel       *string
	logFormat      *string
	root           *string
	configFile     *string
	output         *string
	cpuProfile     *string
	memProfile     *string
	memProfileRate *int
	config         *config.Config
}

func NewRootArgs() *RootArgs {
	return &RootArgs{
		logLevel:       new(string),
		logFormat:      new(string),
		root:           new(string),
		configFile:     new(string),
		output:         new(string),
		cpuProfile:     new(string),
		memProfile:     new(string),
		memProfileRate: new(int),
	}
}

func (a *RootArgs) GetLogLevel() string {
	return *a.logLevel
}

func (a *RootArgs) GetLogFormat() string {
	return *a.logFormat
}

func (a *RootArgs) GetRoot() string {
	return *a.root
}

func (a *RootArgs) GetConfigFile() string {
	return *a.configFile
}

func (a *RootArgs) GetOutput() string {
	return *a.output
}

func (a *RootArgs) GetCPUProfile() string {
	return *a.cpuProfile
}

func (a *RootArgs) GetMemProfile() string {
	return *a.memProfile
}

func (a *RootArgs) GetMemProfileRate() int {
	return *a.memProfileRate
}

// Config returns the merged configuration. Before the root command's
// PersistentPreRunE has run it returns the defaults.
func (a *RootArgs) Config() *config.Config {
	if a.config == nil {
		return config.Default()
	}

	return a.config
}
