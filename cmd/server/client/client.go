// Package client provides commands that call a running talent-api server
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/handlers/admin/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running talent-api server",
	Long:  `Client commands make real gRPC requests against a talent-api server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(talentCommands()...)
	ClientCmd.AddCommand(raritiesCmd)
	ClientCmd.AddCommand(reportsCmd)
}

// run opens a connection, calls fn with a timeout context and closes the
// connection again
func run(fn func(ctx context.Context, c *v1alpha1.Client) error) error {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return fn(ctx, v1alpha1.NewClient(conn))
}

// readObject reads a JSON object from path, or stdin when path is "-"
func readObject(path string) (map[string]any, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path) // #nosec G304 -- path is supplied by the operator
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var raw map[string]any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s as a JSON object: %w", path, err)
	}
	return normalizeNumbers(raw).(map[string]any), nil
}

// normalizeNumbers turns json.Number values into float64 so they survive the
// Struct encoding
func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalizeNumbers(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = normalizeNumbers(val)
		}
		return t
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return t.String()
		}
		return f
	default:
		return v
	}
}

// printJSON writes v as indented JSON
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printIssues lists validation issues one per line
func printIssues(issues []v1alpha1.Issue) {
	for _, issue := range issues {
		path := issue.Path
		if path == "" {
			path = "(root)"
		}
		fmt.Printf("  %s: %s [%s]\n", path, issue.Message, issue.Reason)
	}
}

// describeError prints the issues of a validation error before returning it
func describeError(action string, err error) error {
	if issues := errors.GetIssues(err); len(issues) > 0 {
		fmt.Printf("%s rejected:\n", action)
		for _, issue := range issues {
			fmt.Printf("  %s [%s]\n", issue.String(), issue.Reason)
		}
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
