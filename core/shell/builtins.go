package shell

import (
	"fmt"
	"os"
	"sort"
)

// Builtin is a command run inside the shell process.
type Builtin interface {
	// Main runs the builtin with the arguments that followed its name.
	Main(s *Shell, args []string) Signal
}

// BuiltinFunc adapts a function to the Builtin interface.
type BuiltinFunc func(s *Shell, args []string) Signal

// Main implements Builtin.Main.
func (f BuiltinFunc) Main(s *Shell, args []string) Signal {
	return f(s, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// Builtins maps command names to builtins.
type Builtins map[string]Builtin

// DefaultBuiltins returns the builtins of the shell.
func DefaultBuiltins() Builtins {
	return Builtins{
		"cd":   BuiltinFunc(Cd),
		"help": BuiltinFunc(Help),
		"exit": BuiltinFunc(Exit),
	}
}

// Names returns the sorted names of the builtins.
func (b Builtins) Names() []string {
	var names []string
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Cd changes the working directory of the shell, and so of every program it
// launches afterwards. With no arguments it changes to the home directory.
func Cd(s *Shell, args []string) Signal {
	command := append([]string{"cd"}, args...)

	var dir string
	switch len(args) {
	case 0:
		home, err := s.homeDir()
		if err != nil {
			s.builtinError(command, err.Error())
			return Continue
		}
		dir = home
	case 1:
		dir = args[0]
	default:
		s.builtinError(command, `expected argument to "cd"`)
		return Continue
	}

	if err := os.Chdir(dir); err != nil {
		s.builtinError(command, err.Error())
	}
	return Continue
}

func (s *Shell) homeDir() (string, error) {
	if s.Home != "" {
		return s.Home, nil
	}
	return os.UserHomeDir()
}

const helpText = `
Welcome to LSH (Little Shell)!
This is a simple shell implementation in Go.

Usage:
  Type program names and arguments, then press Enter to execute.

Builtin Commands:
  cd [DIR]       Change the current directory to DIR.
  help           Show this help message.
  exit           Exit the shell.

External Commands:
  Any command available in your system's PATH, such as:
    ls, cat, echo, grep, etc.

For detailed information on external commands, use the 'man' command.

`

// Help prints usage information, arguments are ignored.
func Help(s *Shell, args []string) Signal {
	fmt.Fprint(s.IO.Stdout(), helpText)
	return Continue
}

// Exit stops the shell, arguments are ignored.
func Exit(s *Shell, args []string) Signal {
	return Stop
}
