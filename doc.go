// Package mailrify provides a Go client for the Mailrify email API.
//
// It covers transactional emails, campaigns, contacts and sending domains.
// Every call maps non-2xx responses onto typed errors that can be matched
// with errors.Is (ErrNotFound, ErrRateLimited, ...) or errors.As (*APIError).
//
// Basic usage:
//
//	client, err := mailrify.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	resp, err := client.Emails.Send(ctx, mailrify.SendEmailRequest{
//	    To:      []string{"user@example.com"},
//	    From:    "sender@example.com",
//	    Subject: "Hello",
//	    Text:    "Body",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Email ID:", resp.EmailID)
//
// An empty key falls back to MAILRIFY_API_KEY. MAILRIFY_BASE_URL and
// MAILRIFY_TIMEOUT (seconds) are read the same way when the matching option
// is not given.
//
// The same operations are available without blocking through AsyncClient,
// whose methods return a Future:
//
//	ac, _ := mailrify.NewAsync("your-api-key")
//	f1 := ac.Emails.Get(ctx, "email_1")
//	f2 := ac.Emails.Get(ctx, "email_2")
//	emails, err := mailrify.WaitAll(f1, f2)
//
// For scripts, the package-level services use a lazily built default client:
//
//	mailrify.SetAPIKey("your-api-key")
//	domains, err := mailrify.Domains.List(ctx)
package mailrify
