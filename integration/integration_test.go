//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"github.com/mailrify/mailrify-go"
)

var (
	apiKey      string
	baseURL     string
	toAddress   string
	fromAddress string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	apiKey = os.Getenv("MAILRIFY_API_KEY")
	baseURL = os.Getenv("MAILRIFY_BASE_URL")
	toAddress = os.Getenv("MAILRIFY_INTEGRATION_TO")
	fromAddress = os.Getenv("MAILRIFY_INTEGRATION_FROM")

	if apiKey == "" {
		os.Stderr.WriteString("Skipping integration tests: MAILRIFY_API_KEY not set\n")
		os.Exit(0)
	}
	if baseURL == "" {
		baseURL = mailrify.DefaultBaseURL
	}

	os.Stderr.WriteString("Running integration tests...\n")
	os.Stderr.WriteString("API URL: " + baseURL + "\n")

	os.Exit(m.Run())
}

func newClient(t *testing.T) *mailrify.Client {
	t.Helper()

	client, err := mailrify.New(apiKey,
		mailrify.WithBaseURL(baseURL),
		mailrify.WithTimeout(30*time.Second),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestIntegration_ListEmails(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	resp, err := client.Emails.List(ctx, &mailrify.ListEmailsParams{Limit: 1})
	if err != nil {
		t.Fatalf("Emails.List() error = %v", err)
	}
	if resp.Count < 0 {
		t.Errorf("Count = %d, want >= 0", resp.Count)
	}
	if len(resp.Data) > 1 {
		t.Errorf("len(Data) = %d, want <= 1", len(resp.Data))
	}
}

func TestIntegration_ListDomains(t *testing.T) {
	client := newClient(t)

	domains, err := client.Domains.List(context.Background())
	if err != nil {
		t.Fatalf("Domains.List() error = %v", err)
	}
	t.Logf("Found %d domain(s)", len(domains))
}

func TestIntegration_GetMissingEmail(t *testing.T) {
	client := newClient(t)

	_, err := client.Emails.Get(context.Background(), "does-not-exist")
	if err == nil {
		t.Fatal("Emails.Get() error = nil, want an API error")
	}
	var apiErr *mailrify.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Emails.Get() error = %T %v, want *APIError", err, err)
	}
	t.Logf("Missing email returned status %d", apiErr.StatusCode)
}

func TestIntegration_InvalidKey(t *testing.T) {
	client, err := mailrify.New("invalid-key", mailrify.WithBaseURL(baseURL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	_, err = client.Emails.List(context.Background(), &mailrify.ListEmailsParams{Limit: 1})
	if !errors.Is(err, mailrify.ErrUnauthorized) {
		t.Errorf("Emails.List() error = %v, want ErrUnauthorized", err)
	}
}

func TestIntegration_SendEmail(t *testing.T) {
	if toAddress == "" || fromAddress == "" {
		t.Skip("MAILRIFY_INTEGRATION_TO or MAILRIFY_INTEGRATION_FROM not set")
	}
	client := newClient(t)

	resp, err := client.Emails.Send(context.Background(), mailrify.SendEmailRequest{
		To:      []string{toAddress},
		From:    fromAddress,
		Subject: "Mailrify SDK integration test",
		Text:    "This email was sent by the automated integration test suite.",
	})
	if err != nil {
		t.Fatalf("Emails.Send() error = %v", err)
	}
	if resp.EmailID == "" {
		t.Error("EmailID is empty")
	}
	t.Logf("Sent email: %s", resp.EmailID)
}

func TestIntegration_AsyncSendEmail(t *testing.T) {
	if toAddress == "" || fromAddress == "" {
		t.Skip("MAILRIFY_INTEGRATION_TO or MAILRIFY_INTEGRATION_FROM not set")
	}
	client := newClient(t).Async()

	resp, err := client.Emails.Send(context.Background(), mailrify.SendEmailRequest{
		To:      []string{toAddress},
		From:    fromAddress,
		Subject: "Mailrify SDK async integration test",
		Text:    "This email was sent by the automated integration test suite.",
	}).Await()
	if err != nil {
		t.Fatalf("Emails.Send() error = %v", err)
	}
	if resp.EmailID == "" {
		t.Error("EmailID is empty")
	}
}
