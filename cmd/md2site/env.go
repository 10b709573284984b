package main

import (
	"io"
	"os"
	"time"
)

// Environment holds injectable dependencies for testability.
// Commands write progress to Stdout and failures to Stderr; nothing else logs.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
	}
}
