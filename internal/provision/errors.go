package provision

import (
	"errors"

	"github.com/ZebulonRouseFrantzich/binstage/internal/platform"
)

var (
	// ErrUnsupportedArchitecture is returned when the host architecture has
	// no staged artifact label.
	ErrUnsupportedArchitecture = platform.ErrUnsupportedArchitecture
	// ErrUnsupportedOS is returned when the host operating system is not
	// linux, darwin or windows.
	ErrUnsupportedOS = platform.ErrUnsupportedOS
	// ErrSourceNotFound is returned when the staged artifact for the host
	// platform does not exist.
	ErrSourceNotFound = errors.New("staged binary not found")
	// ErrDirectoryDiscoveryFailed is returned when the installation directory
	// cannot be determined.
	ErrDirectoryDiscoveryFailed = errors.New("installation directory discovery failed")
	// ErrTargetNotFound is returned by a strict uninstall when there is no
	// installed binary to remove.
	ErrTargetNotFound = errors.New("installed binary not found")
	// ErrUnknownCommand is returned for anything other than install or
	// uninstall.
	ErrUnknownCommand = errors.New("unknown command")
)
