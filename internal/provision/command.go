package provision

import "fmt"

// Usage is printed when the command argument is missing or not recognised.
const Usage = "Usage: binstage [flags] install|uninstall"

// Command is a provisioning action.
type Command int

const (
	// CommandUnknown is the zero value and is never dispatched.
	CommandUnknown Command = iota
	// CommandInstall copies the staged binary into the installation directory.
	CommandInstall
	// CommandUninstall removes the installed binary.
	CommandUninstall
)

// String returns the command-line name of the command.
func (c Command) String() string {
	switch c {
	case CommandInstall:
		return "install"
	case CommandUninstall:
		return "uninstall"
	case CommandUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// ParseCommand converts a command-line argument into a Command.
func ParseCommand(s string) (Command, error) {
	switch s {
	case "install":
		return CommandInstall, nil
	case "uninstall":
		return CommandUninstall, nil
	default:
		return CommandUnknown, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
	}
}
