package config_test

import "github.com/urfave/cli/v3"

func flagNames(flags []cli.Flag) map[string]bool {
	names := make(map[string]bool)
	for _, flag := range flags {
		if f, ok := flag.(interface{ Names() []string }); ok {
			for _, name := range f.Names() {
				names[name] = true
			}
		}
	}
	return names
}
