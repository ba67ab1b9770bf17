// Package ui defines color themes for the rsa4096 CLI. Each Theme exposes a
// set of lipgloss.Style values rather than raw ANSI escape sequences, so
// rendering degrades automatically on non-terminal output and under
// NO_COLOR.
//
// This package is a shared dependency for clipresent and the app package;
// neither the arithmetic core nor apperrors import it.
package ui
