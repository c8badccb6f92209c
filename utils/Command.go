package utils

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
)

var LogCommand = base.NewLogCategory("Command")

/***************************************
 * Command flags
 ***************************************/

type CommandFlagsVisitor interface {
	// Persistent variables survive in the user config between runs.
	Persistent(name, usage string, value PersistentVar)
	// Variable only lives for the current command line.
	Variable(name, usage string, value PersistentVar)
}

type CommandParsableFlags interface {
	Flags(CommandFlagsVisitor)
}

type commandPersistentVar struct {
	// Object is the parsable flags group name, it keys the config file so
	// persistent values are shared by every command exposing the group.
	Object      string
	Name, Usage string
	Value       PersistentVar
	Persistent  bool
}

type commandFlagsCollector struct {
	object    string
	Variables []commandPersistentVar
}

func (x *commandFlagsCollector) Persistent(name, usage string, value PersistentVar) {
	x.Variables = append(x.Variables, commandPersistentVar{Object: x.object, Name: name, Usage: usage, Value: value, Persistent: true})
}
func (x *commandFlagsCollector) Variable(name, usage string, value PersistentVar) {
	x.Variables = append(x.Variables, commandPersistentVar{Object: x.object, Name: name, Usage: usage, Value: value})
}

type namedCommandFlags struct {
	Name, Description string
	Value             CommandParsableFlags
}

var GlobalParsableFlags []namedCommandFlags

func NewGlobalCommandParsableFlags[T any, P interface {
	*T
	CommandParsableFlags
}](name, description string, flags *T) func() P {
	parsable := P(flags)
	GlobalParsableFlags = append(GlobalParsableFlags, namedCommandFlags{
		Name:        name,
		Description: description,
		Value:       parsable,
	})
	return func() P {
		return parsable
	}
}

/***************************************
 * Command registry
 ***************************************/

type CommandContext interface {
	Args() base.StringSet
}

type commandItem struct {
	Category, Name, Description string

	parsables []namedCommandFlags
	run       func(CommandContext) error

	args base.StringSet
}

func (x *commandItem) Args() base.StringSet { return x.args }

type CommandOptionFunc func(*commandItem)

func OptionCommandRun(run func(CommandContext) error) CommandOptionFunc {
	return func(ci *commandItem) {
		ci.run = run
	}
}
func OptionCommandParsableFlags(name, description string, flags CommandParsableFlags) CommandOptionFunc {
	return func(ci *commandItem) {
		ci.parsables = append(ci.parsables, namedCommandFlags{
			Name:        name,
			Description: description,
			Value:       flags,
		})
	}
}

var AllCommands []*commandItem

func NewCommand(category, name, description string, options ...CommandOptionFunc) func() *commandItem {
	result := &commandItem{
		Category:    category,
		Name:        name,
		Description: description,
	}
	for _, opt := range options {
		opt(result)
	}
	AllCommands = append(AllCommands, result)
	return func() *commandItem {
		return result
	}
}

func FindCommand(name string) (*commandItem, bool) {
	for _, it := range AllCommands {
		if strings.EqualFold(it.Name, name) {
			return it, true
		}
	}
	return nil, false
}

/***************************************
 * Command line parsing
 ***************************************/

func (x *commandItem) collectVariables() (result []commandPersistentVar) {
	collector := commandFlagsCollector{}
	for _, parsable := range GlobalParsableFlags {
		collector.object = parsable.Name
		parsable.Value.Flags(&collector)
	}
	for _, parsable := range x.parsables {
		collector.object = parsable.Name
		parsable.Value.Flags(&collector)
	}
	return collector.Variables
}

func (x *commandItem) Parse(data PersistentData, args []string) error {
	variables := x.collectVariables()

	for _, v := range variables {
		if v.Persistent {
			// missing entries are fine, the default stands
			_ = data.LoadData(v.Object, v.Name, v.Value)
		}
	}

	x.args.Clear()
	noMoreOptions := false

	for _, arg := range args {
		if arg == "--" {
			// everything after "--" is forwarded verbatim
			noMoreOptions = true
			continue
		}
		if noMoreOptions || !strings.HasPrefix(arg, "-") {
			x.args.Append(arg)
			continue
		}

		name, value := strings.TrimLeft(arg, "-"), ""
		if sep := strings.IndexByte(name, '='); sep != -1 {
			name, value = name[:sep], name[sep+1:]
		}

		matched := false
		for _, v := range variables {
			if strings.EqualFold(v.Name, name) {
				if err := v.Value.Set(value); err != nil {
					return fmt.Errorf("%s: invalid value for -%s: %v", x.Name, v.Name, err)
				}
				matched = true
				break
			}
		}
		if !matched {
			return fmt.Errorf("%s: unknown option %q", x.Name, arg)
		}
	}

	for _, v := range variables {
		if v.Persistent {
			data.StoreData(v.Object, v.Name, v.Value)
		}
	}
	return nil
}

func (x *commandItem) Run(cc CommandContext) error {
	if x.run == nil {
		return nil
	}
	return x.run(cc)
}

/***************************************
 * Help
 ***************************************/

func PrintCommandHelp(dst io.Writer, prefix string) {
	fmt.Fprintf(dst, "usage: %s <command> [options]...\n", prefix)

	byCategory := map[string][]*commandItem{}
	for _, it := range AllCommands {
		byCategory[it.Category] = append(byCategory[it.Category], it)
	}

	categories := make([]string, 0, len(byCategory))
	for name := range byCategory {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	for _, category := range categories {
		fmt.Fprintf(dst, "\n%s:\n", category)
		for _, it := range byCategory[category] {
			fmt.Fprintf(dst, "  %-18s %s\n", strings.ToLower(it.Name), it.Description)
		}
	}

	collector := commandFlagsCollector{}
	for _, parsable := range GlobalParsableFlags {
		parsable.Value.Flags(&collector)
	}
	if len(collector.Variables) > 0 {
		fmt.Fprintf(dst, "\noptions:\n")
		for _, v := range collector.Variables {
			fmt.Fprintf(dst, "  -%-17s %s (%v)\n", v.Name, v.Usage, v.Value)
		}
	}
}
