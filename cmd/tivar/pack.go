package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/calctools/tivar/pkg/ti83f"
)

func packCmd() *cli.Command {
	var (
		inPath   string
		outPath  string
		varName  string
		varType  string
		comment  string
		archived bool
	)

	return &cli.Command{
		Name:  "pack",
		Usage: "Pack a raw token body into a single-variable file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "in",
				Usage:       "input file holding the raw variable body",
				Destination: &inPath,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "output variable file path",
				Destination: &outPath,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "variable name (e.g. FIB, Str1)",
				Destination: &varName,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "type",
				Aliases:     []string{"t"},
				Usage:       "variable type (program, protected-program, string, appvar)",
				Value:       "program",
				Destination: &varType,
			},
			&cli.StringFlag{
				Name:        "comment",
				Usage:       "container comment",
				Value:       "Created by tivar",
				Destination: &comment,
			},
			&cli.BoolFlag{
				Name:        "archived",
				Usage:       "mark the variable as archived",
				Destination: &archived,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			body, err := os.ReadFile(inPath)
			if err != nil {
				return err
			}
			name, err := ti83f.NameOf(varName)
			if err != nil {
				return fmt.Errorf("variable name %q: %w", varName, err)
			}
			typeID, value, err := packValue(varType, body)
			if err != nil {
				return err
			}

			entry := ti83f.Entry{
				Type:  typeID,
				Name:  name,
				Value: value,
			}
			if archived {
				entry.Flags |= ti83f.FlagArchived
			}
			f := &ti83f.File{
				Format:  ti83f.FormatTI83F,
				Comment: ti83f.NewComment(comment, false),
				Entries: []ti83f.Entry{entry},
			}
			return f.WriteFile(outPath)
		},
	}
}

func packValue(varType string, body []byte) (ti83f.TypeID, ti83f.Value, error) {
	switch varType {
	case "program":
		return ti83f.TypeProgram, ti83f.ProgramValue(body), nil
	case "protected-program":
		return ti83f.TypeProtectedProgram, ti83f.ProgramValue(body), nil
	case "string":
		return ti83f.TypeString, ti83f.StringValue(body), nil
	case "equation":
		return ti83f.TypeEquation, ti83f.StringValue(body), nil
	case "appvar":
		return ti83f.TypeAppVar, ti83f.OpaqueValue(body), nil
	default:
		return 0, ti83f.Value{}, fmt.Errorf("unsupported variable type %q", varType)
	}
}
