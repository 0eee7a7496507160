package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goliatone/go-polyglot/cmd/polyglot/internal/bootstrap"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runInspect(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("polyglot inspect: %v", err)
	}
}

func runInspect(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("polyglot-inspect", flag.ExitOnError)
	file := fs.String("file", "", "Path to the Markdown document to inspect")
	renderHTML := fs.Bool("render-html", false, "Render the sanitized document as HTML instead of Markdown")
	showStats := fs.Bool("stats", false, "Include document statistics (word count, headings, links)")
	logLevel := fs.String("log-level", "error", "Log level (trace|debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	content, err := bootstrap.ReadDocument(*file)
	if err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{LogLevel: *logLevel})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	ctx := context.Background()
	doc, err := module.Service.Parse(ctx, content)
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	fmt.Fprintf(out, "language: %s\n", doc.Language)
	if len(doc.Artifacts) > 0 {
		fmt.Fprintln(out, "artifacts:")
		for _, artifact := range doc.Artifacts {
			line := fmt.Sprintf("  - type: %s", artifact.Type)
			if artifact.Location != "" {
				line += fmt.Sprintf(" location: %s", artifact.Location)
			}
			if artifact.Executable {
				line += " executable: true"
			}
			fmt.Fprintln(out, line)
		}
	}
	if len(doc.Metadata) > 0 {
		encoded, err := json.MarshalIndent(doc.Metadata, "", "  ")
		if err != nil {
			return fmt.Errorf("encode metadata: %w", err)
		}
		fmt.Fprintf(out, "metadata: %s\n", encoded)
	}

	if *showStats {
		stats := module.Service.Stats(content)
		encoded, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("encode stats: %w", err)
		}
		fmt.Fprintf(out, "stats: %s\n", encoded)
	}

	if *renderHTML {
		html, err := module.Service.Render(ctx, content)
		if err != nil {
			return fmt.Errorf("render document: %w", err)
		}
		fmt.Fprintln(out, "---")
		fmt.Fprint(out, string(html))
		return nil
	}

	fmt.Fprintln(out, "---")
	fmt.Fprint(out, module.Service.Sanitize(content))
	return nil
}
