package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/calctools/tivar/internal/api"
	"github.com/calctools/tivar/internal/tokens"
	"github.com/calctools/tivar/pkg/ti83f"
)

func inspectCmd() *cli.Command {
	var (
		filePath   string
		asJSON     bool
		showTokens bool
	)

	return &cli.Command{
		Name:  "inspect",
		Usage: "Inspect the contents of a calculator variable file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "path to .8xp/.8xs/.8xl variable file",
				Destination: &filePath,
				Required:    true,
			},
			&cli.BoolFlag{Name: "json", Usage: "emit the decoded file as JSON", Destination: &asJSON},
			&cli.BoolFlag{Name: "tokens", Usage: "detokenize program and string bodies", Destination: &showTokens},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			f, err := ti83f.Open(filePath)
			if err != nil {
				return err
			}

			if asJSON {
				doc := api.DocumentFile(filepath.Base(filePath), f)
				buf, err := json.MarshalIndent(doc, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(buf))
				return nil
			}

			fmt.Printf("File: %s\n", filePath)
			fmt.Printf("%s | entries=%d | comment=%q\n", f.Format, len(f.Entries), f.Comment.String())
			for _, e := range f.Entries {
				printEntry(e, showTokens)
			}
			return nil
		},
	}
}

func printEntry(e ti83f.Entry, showTokens bool) {
	flags := ""
	if e.Archived() {
		flags = " [archived]"
	}
	fmt.Printf("\n%s  (%s, version=0x%02X)%s\n", e.Name, e.Type, e.Version, flags)

	switch e.Value.Kind() {
	case ti83f.KindReal:
		r, _ := e.Value.AsReal()
		fmt.Printf("  value: %s\n", r)
	case ti83f.KindComplex:
		c, _ := e.Value.AsComplex()
		fmt.Printf("  value: %s\n", c)
	case ti83f.KindRealList:
		rs, _ := e.Value.AsRealList()
		fmt.Printf("  elements: %d\n", len(rs))
		for i, r := range rs {
			fmt.Printf("    [%d] %s\n", i, r)
		}
	case ti83f.KindComplexList:
		cs, _ := e.Value.AsComplexList()
		fmt.Printf("  elements: %d\n", len(cs))
		for i, c := range cs {
			fmt.Printf("    [%d] %s\n", i, c)
		}
	case ti83f.KindMatrix:
		m, _ := e.Value.AsMatrix()
		fmt.Printf("  dimensions: %dx%d\n", m.Rows, m.Cols)
		for r := 0; r < m.Rows; r++ {
			fmt.Print("    ")
			for c := 0; c < m.Cols; c++ {
				fmt.Printf("%s ", m.At(r, c))
			}
			fmt.Println()
		}
	case ti83f.KindString:
		b, _ := e.Value.AsStringBytes()
		fmt.Printf("  size: %d bytes\n", len(b))
		if showTokens {
			fmt.Printf("  text: %s\n", tokens.Detokenize(b))
		}
	case ti83f.KindProgram:
		b, _ := e.Value.AsProgramBytes()
		fmt.Printf("  size: %d bytes\n", len(b))
		if showTokens {
			fmt.Println("  listing:")
			printListing(os.Stdout, tokens.Detokenize(b))
		}
	default:
		b, _ := e.Value.AsOpaqueBytes()
		fmt.Printf("  size: %d bytes (opaque)\n", len(b))
	}
}

func printListing(w io.Writer, listing string) {
	for _, line := range strings.Split(listing, "\n") {
		fmt.Fprintf(w, "    %s\n", line)
	}
}
