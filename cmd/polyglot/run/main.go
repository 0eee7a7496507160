package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-polyglot/cmd/polyglot/internal/bootstrap"
	polyglotcmd "github.com/goliatone/go-polyglot/internal/commands/polyglot"
	"github.com/goliatone/go-polyglot/internal/transpiler"
	"github.com/goliatone/go-polyglot/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	ok, err := runExecute(os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatalf("polyglot run: %v", err)
	}
	if !ok {
		os.Exit(1)
	}
}

func runExecute(args []string, out io.Writer) (bool, error) {
	fs := flag.NewFlagSet("polyglot-run", flag.ExitOnError)
	file := fs.String("file", "", "Path to the Markdown document to execute")
	target := fs.String("target", "", "Execution target (docker|terraform|kubernetes|git|bash|sql); defaults to the detected language")
	timeout := fs.Duration("timeout", 60*time.Second, "Per-command execution timeout")
	logLevel := fs.String("log-level", "info", "Log level (trace|debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		return false, err
	}

	content, err := bootstrap.ReadDocument(*file)
	if err != nil {
		return false, err
	}

	// Reuse the command message validation so CLI input obeys the same rules
	// as programmatic dispatch.
	cmd := polyglotcmd.ExecuteDocumentCommand{Content: content, Target: strings.TrimSpace(*target)}
	if err := cmd.Validate(); err != nil {
		return false, fmt.Errorf("validate input: %w", err)
	}

	module, err := moduleBuilder(bootstrap.Options{
		LogLevel: *logLevel,
		Timeout:  *timeout,
	})
	if err != nil {
		return false, fmt.Errorf("bootstrap module: %w", err)
	}

	ctx := context.Background()

	var result interfaces.ExecutionResult
	if cmd.Target == "" {
		result, err = module.Service.Execute(ctx, content)
	} else {
		result, err = module.Service.ExecuteTarget(ctx, content, transpiler.Target(cmd.Target))
	}
	if err != nil {
		return false, fmt.Errorf("execute document: %w", err)
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return false, fmt.Errorf("encode result: %w", err)
	}
	fmt.Fprintln(out, string(encoded))
	return result.OK, nil
}
