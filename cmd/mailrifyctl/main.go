// Command mailrifyctl runs single Mailrify API calls from the shell. Request
// bodies are read as JSON from stdin and results are written as JSON to
// stdout, which makes it usable from cross-SDK smoke scripts.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/mailrify/mailrify-go"
)

const usage = `usage: mailrifyctl <command> [args]

commands:
  send                 send the email read from stdin
  get-email <id>       print one email
  list-emails [limit]  print the most recent emails
  cancel <id>          cancel a scheduled email
  list-domains         print all domains
  verify-domain <id>   re-check a domain's DNS records`

// Config holds the process dependencies of run.
type Config struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Timeout time.Duration
}

// DefaultConfig wires run to the real process.
func DefaultConfig() Config {
	return Config{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Timeout: 60 * time.Second,
	}
}

var commands = map[string]bool{
	"send":          true,
	"get-email":     true,
	"list-emails":   true,
	"cancel":        true,
	"list-domains":  true,
	"verify-domain": true,
}

// newClient builds a client from cfg alone; the process environment is not
// consulted.
func newClient(cfg Config) (*mailrify.Client, error) {
	apiKey := cfg.Getenv(mailrify.EnvAPIKey)
	if apiKey == "" {
		return nil, &mailrify.ConfigError{Field: "api_key", Err: mailrify.ErrMissingAPIKey}
	}
	baseURL := cfg.Getenv(mailrify.EnvBaseURL)
	if baseURL == "" {
		baseURL = mailrify.DefaultBaseURL
	}
	return mailrify.New(apiKey, mailrify.WithBaseURL(baseURL), mailrify.WithTimeout(cfg.Timeout))
}

func run(args []string, cfg Config) error {
	if len(args) < 2 {
		return errors.New(usage)
	}
	if !commands[args[1]] {
		return fmt.Errorf("unknown command: %s", args[1])
	}

	client, err := newClient(cfg)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	var result any
	switch cmd := args[1]; cmd {
	case "send":
		result, err = send(ctx, client, cfg.Stdin)
	case "get-email":
		if len(args) < 3 {
			return errors.New("usage: mailrifyctl get-email <id>")
		}
		result, err = client.Emails.Get(ctx, args[2])
	case "list-emails":
		params := &mailrify.ListEmailsParams{Limit: 10}
		if len(args) >= 3 {
			if params.Limit, err = strconv.Atoi(args[2]); err != nil {
				return fmt.Errorf("invalid limit %q: %w", args[2], err)
			}
		}
		result, err = client.Emails.List(ctx, params)
	case "cancel":
		if len(args) < 3 {
			return errors.New("usage: mailrifyctl cancel <id>")
		}
		result, err = client.Emails.Cancel(ctx, args[2])
	case "list-domains":
		result, err = client.Domains.List(ctx)
	case "verify-domain":
		if len(args) < 3 {
			return errors.New("usage: mailrifyctl verify-domain <id>")
		}
		id, convErr := strconv.Atoi(args[2])
		if convErr != nil {
			return fmt.Errorf("invalid domain id %q: %w", args[2], convErr)
		}
		result, err = client.Domains.Verify(ctx, id)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cfg.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func send(ctx context.Context, client *mailrify.Client, stdin io.Reader) (*mailrify.SendEmailResponse, error) {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("parse request: %w", err)
	}

	req, err := mailrify.RequestFromMap[mailrify.SendEmailRequest](body)
	if err != nil {
		return nil, err
	}
	return client.Emails.Send(ctx, req)
}

func fatal(stderr io.Writer, format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
	os.Exit(1)
}
