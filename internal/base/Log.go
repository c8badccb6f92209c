package base

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

/***************************************
 * Log Categories
 ***************************************/

type LogCategory struct {
	Name string
}

func NewLogCategory(name string) *LogCategory {
	return &LogCategory{Name: name}
}

/***************************************
 * Log Levels
 ***************************************/

type LogLevel int32

const (
	LOG_DEBUG LogLevel = iota
	LOG_VERBOSE
	LOG_INFO
	LOG_CLAIM
	LOG_WARNING
	LOG_ERROR
)

func GetLogLevels() []LogLevel {
	return []LogLevel{
		LOG_DEBUG,
		LOG_VERBOSE,
		LOG_INFO,
		LOG_CLAIM,
		LOG_WARNING,
		LOG_ERROR,
	}
}
func (x LogLevel) String() string {
	switch x {
	case LOG_DEBUG:
		return "DEBUG"
	case LOG_VERBOSE:
		return "VERBOSE"
	case LOG_INFO:
		return "INFO"
	case LOG_CLAIM:
		return "CLAIM"
	case LOG_WARNING:
		return "WARNING"
	case LOG_ERROR:
		return "ERROR"
	default:
		UnexpectedValue(x)
		return ""
	}
}
func (x *LogLevel) Set(in string) (err error) {
	switch strings.ToUpper(in) {
	case LOG_DEBUG.String():
		*x = LOG_DEBUG
	case LOG_VERBOSE.String():
		*x = LOG_VERBOSE
	case LOG_INFO.String():
		*x = LOG_INFO
	case LOG_CLAIM.String():
		*x = LOG_CLAIM
	case LOG_WARNING.String():
		*x = LOG_WARNING
	case LOG_ERROR.String():
		*x = LOG_ERROR
	default:
		err = MakeUnexpectedValueError(x, in)
	}
	return err
}
func (x LogLevel) ansiColor() string {
	switch x {
	case LOG_DEBUG:
		return ANSI_FG_MAGENTA
	case LOG_VERBOSE:
		return ANSI_FG_CYAN
	case LOG_INFO:
		return ANSI_FG_WHITE
	case LOG_CLAIM:
		return ANSI_FG_GREEN
	case LOG_WARNING:
		return ANSI_FG_YELLOW
	case LOG_ERROR:
		return ANSI_FG_RED
	default:
		UnexpectedValue(x)
		return ""
	}
}

/***************************************
 * Logger
 ***************************************/

type logger struct {
	barrier sync.Mutex
	level   LogLevel

	warningsSeen sync.Map
}

var gLogger = logger{
	level: LOG_INFO,
}

func SetLogLevel(level LogLevel) {
	gLogger.barrier.Lock()
	defer gLogger.barrier.Unlock()
	gLogger.level = level
}
func IsLogLevelActive(level LogLevel) bool {
	return level >= gLogger.level
}

func logPrint(level LogLevel, category *LogCategory, msg string, args ...interface{}) {
	if !IsLogLevelActive(level) {
		return
	}

	text := msg
	if len(args) > 0 {
		text = fmt.Sprintf(msg, args...)
	}

	gLogger.barrier.Lock()
	defer gLogger.barrier.Unlock()

	dst := os.Stdout
	if level >= LOG_WARNING {
		dst = os.Stderr
	}

	if EnableAnsiColor() {
		fmt.Fprintf(dst, "%s%-10s%s %s%s%s\n",
			ANSI_FG_DARKGRAY, category.Name, ANSI_RESET,
			level.ansiColor(), text, ANSI_RESET)
	} else {
		fmt.Fprintf(dst, "%-10s %s\n", category.Name, text)
	}
}

func LogDebug(category *LogCategory, msg string, args ...interface{}) {
	logPrint(LOG_DEBUG, category, msg, args...)
}
func LogVerbose(category *LogCategory, msg string, args ...interface{}) {
	logPrint(LOG_VERBOSE, category, msg, args...)
}
func LogInfo(category *LogCategory, msg string, args ...interface{}) {
	logPrint(LOG_INFO, category, msg, args...)
}
func LogClaim(category *LogCategory, msg string, args ...interface{}) {
	logPrint(LOG_CLAIM, category, msg, args...)
}
func LogWarning(category *LogCategory, msg string, args ...interface{}) {
	logPrint(LOG_WARNING, category, msg, args...)
}
func LogWarningOnce(category *LogCategory, msg string, args ...interface{}) {
	text := fmt.Sprintf(msg, args...)
	if _, loaded := gLogger.warningsSeen.LoadOrStore(text, true); !loaded {
		logPrint(LOG_WARNING, category, "%s", text)
	}
}
func LogError(category *LogCategory, msg string, args ...interface{}) {
	logPrint(LOG_ERROR, category, msg, args...)
}

func LogFatal(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
	os.Exit(1)
}

func LogPanic(category *LogCategory, msg string, args ...interface{}) {
	logPrint(LOG_ERROR, category, msg, args...)
	panic(fmt.Errorf(msg, args...))
}
func LogPanicIfFailed(category *LogCategory, err error) {
	if err != nil {
		LogPanic(category, "%v", err)
	}
}

// LogForwardln bypasses category formatting, for command outputs meant to be piped.
func LogForwardln(args ...string) {
	gLogger.barrier.Lock()
	defer gLogger.barrier.Unlock()
	fmt.Fprintln(os.Stdout, strings.Join(args, ""))
}
