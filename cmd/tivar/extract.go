package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/calctools/tivar/pkg/ti83f"
)

func extractCmd() *cli.Command {
	var (
		filePath string
		varName  string
		outPath  string
	)

	return &cli.Command{
		Name:  "extract",
		Usage: "Extract a variable's raw body from a variable file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "path to variable file",
				Destination: &filePath,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "variable name (e.g. FIB, A, Str1)",
				Destination: &varName,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "output path (defaults to stdout)",
				Destination: &outPath,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			f, err := ti83f.Open(filePath)
			if err != nil {
				return err
			}
			name, err := ti83f.NameOf(varName)
			if err != nil {
				return fmt.Errorf("variable name %q: %w", varName, err)
			}
			e := f.Entry(name)
			if e == nil {
				return fmt.Errorf("no variable %q in %s", varName, filePath)
			}

			body, err := entryBody(e)
			if err != nil {
				return err
			}
			if outPath == "" {
				_, err = os.Stdout.Write(body)
				return err
			}
			return os.WriteFile(outPath, body, 0o644)
		},
	}
}

// entryBody returns the byte body of token-carrying variables. Numeric
// variables have no meaningful raw body; inspect renders those instead.
func entryBody(e *ti83f.Entry) ([]byte, error) {
	switch e.Value.Kind() {
	case ti83f.KindString:
		return e.Value.AsStringBytes()
	case ti83f.KindProgram:
		return e.Value.AsProgramBytes()
	case ti83f.KindRawOpaque:
		return e.Value.AsOpaqueBytes()
	default:
		return nil, fmt.Errorf("variable %s is a %s; extract supports programs, strings and opaque variables", e.Name, e.Type)
	}
}
