package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
)

/***************************************
 * Global command flags
 ***************************************/

type CommandFlags struct {
	LogLevel base.LogLevel
	Color    BoolVar
}

var GetCommandFlags = NewGlobalCommandParsableFlags("CommandLine", "global command-line options", &CommandFlags{
	LogLevel: base.LOG_INFO,
	Color:    base.INHERITABLE_INHERIT,
})

func (flags *CommandFlags) Flags(cfv CommandFlagsVisitor) {
	cfv.Variable("LogLevel", "set log verbosity", &flags.LogLevel)
	cfv.Variable("Color", "force enable/disable ansi colors", &flags.Color)
}
func (flags *CommandFlags) Apply() {
	base.SetLogLevel(flags.LogLevel)
	if !flags.Color.IsInheritable() {
		base.SetEnableAnsiColor(flags.Color.Get())
	}
}

/***************************************
 * Command environment
 ***************************************/

type CommandEnvT struct {
	prefix     string
	args       []string
	startedAt  time.Time
	persistent *persistentData
	configPath Filename
}

var CommandEnv *CommandEnvT

func InitCommandEnv(prefix string, args []string, startedAt time.Time) *CommandEnvT {
	base.InitBase()

	if wd, err := os.Getwd(); err == nil {
		UFS.Working = MakeDirectory(wd)
	}
	if exe, err := os.Executable(); err == nil {
		UFS.Executable = MakeFilename(exe)
	}

	UFS.Cache = defaultCacheDir(prefix)
	UFS.Transient = UFS.Cache.Folder("transient")
	UFS.Packages = UFS.Cache.Folder("packages")

	CommandEnv = &CommandEnvT{
		prefix:     prefix,
		args:       args,
		startedAt:  startedAt,
		persistent: NewPersistentMap(),
		configPath: UFS.Cache.File("config.json"),
	}
	return CommandEnv
}

// defaultCacheDir honors <PREFIX>_CACHE so CI can relocate everything
// this tool writes with a single variable.
func defaultCacheDir(prefix string) Directory {
	envVar := strings.ToUpper(strings.ReplaceAll(prefix, "-", "_")) + "_CACHE"
	if overriden, ok := os.LookupEnv(envVar); ok {
		return MakeDirectory(overriden)
	}
	if userCache, err := os.UserCacheDir(); err == nil {
		return MakeDirectory(filepath.Join(userCache, prefix))
	}
	return UFS.Working.Folder("." + prefix)
}

func (env *CommandEnvT) Prefix() string             { return env.prefix }
func (env *CommandEnvT) StartedAt() time.Time       { return env.startedAt }
func (env *CommandEnvT) Persistent() PersistentData { return env.persistent }
func (env *CommandEnvT) ConfigPath() Filename       { return env.configPath }

func (env *CommandEnvT) LoadConfig() error {
	if !env.configPath.Exists() {
		return nil
	}
	return UFS.OpenFile(env.configPath, func(rd *os.File) error {
		return env.persistent.Deserialize(rd)
	})
}
func (env *CommandEnvT) SaveConfig() error {
	return UFS.Create(env.configPath, func(wr io.Writer) error {
		return env.persistent.Serialize(wr)
	})
}

func (env *CommandEnvT) Run() error {
	if len(env.args) == 0 {
		PrintCommandHelp(os.Stdout, env.prefix)
		return nil
	}

	name := env.args[0]
	if name == "help" || name == "-h" || name == "--help" {
		PrintCommandHelp(os.Stdout, env.prefix)
		return nil
	}

	command, ok := FindCommand(name)
	if !ok {
		PrintCommandHelp(os.Stderr, env.prefix)
		return fmt.Errorf("unknown command %q", name)
	}

	if err := command.Parse(env.persistent, env.args[1:]); err != nil {
		return err
	}
	GetCommandFlags().Apply()

	base.LogVerbose(LogCommand, "running command %q", command.Name)
	return command.Run(command)
}
