package main

import (
	"os"

	"golang.org/x/term"
)

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

// isTerminal reports whether writer is an interactive terminal. Buffers and
// pipes get plain output.
func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}
