package main

import (
	"fmt"
)

// runConfig prints the effective configuration as YAML: config file,
// environment and flags merged exactly as build would see them.
func runConfig(args []string, env *Environment) error {
	flags, fs, err := parseBuildFlags("config", args, printConfigUsage, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}

	cfg, err := resolveBuildConfig(fs, flags, env)
	if err != nil {
		return err
	}

	out, err := cfg.Encode()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(out)
	return err
}
