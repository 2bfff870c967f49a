package internal

import (
	"fmt"
	"io"
)

// Run executes one generator invocation: args excludes argv[0], and a summary
// line per written file goes to stdout. Nothing is written unless every
// descriptor loads and every output renders.
func Run(args []string, stdout io.Writer) error {
	opts, err := ParseArgs(args)
	if err != nil {
		return err
	}

	cfg, err := NewConfig(opts)
	if err != nil {
		return err
	}

	paths := cfg.DescriptorPaths()
	if err = CheckInputs(paths); err != nil {
		return err
	}

	records, err := NewLoader().LoadAll(paths)
	if err != nil {
		return err
	}

	artifact, err := NewBuilder().Build(records)
	if err != nil {
		return err
	}

	outputs, err := NewGenerator(cfg).Generate(artifact)
	if err != nil {
		return err
	}
	for _, o := range outputs {
		_, _ = fmt.Fprintf(stdout, "wrote %s (%d sheets, %d frames)\n", o.Path, len(artifact.Sheets), len(artifact.Frames))
	}
	return nil
}
