package mailrify

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeAsyncClient(t *testing.T, status int, body string) (*AsyncClient, *fakeAPI) {
	t.Helper()
	f, baseURL := startFakeAPI(t, status, body)
	ac, err := NewAsync(testAPIKey, WithBaseURL(baseURL))
	require.NoError(t, err)
	t.Cleanup(func() { _ = ac.Close() })
	return ac, f
}

func TestNewAsync_RequiresAPIKey(t *testing.T) {
	clearMailrifyEnv(t)

	_, err := NewAsync("")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestAsyncClient_Send(t *testing.T) {
	ac, api := newFakeAsyncClient(t, http.StatusOK, `{"emailId":"email_async"}`)

	f := ac.Emails.Send(context.Background(), SendEmailRequest{
		To:      []string{"async@example.com"},
		From:    "sender@example.com",
		Subject: "Async",
		Text:    "Async",
	})
	resp, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, "email_async", resp.EmailID)
	assert.Equal(t, "/api/v1/emails", api.last(t).Path)
}

func TestAsyncClient_SameRequestAsSync(t *testing.T) {
	ac, api := newFakeAsyncClient(t, http.StatusOK, `{"emailId":"email_123"}`)
	req := SendEmailRequest{
		To:      []string{"a@example.com", "b@example.com"},
		From:    "sender@example.com",
		Subject: "Same",
		HTML:    "<p>Same</p>",
	}

	_, err := ac.Sync().Emails.Send(context.Background(), req)
	require.NoError(t, err)
	syncReq := api.last(t)

	_, err = ac.Emails.Send(context.Background(), req).Await()
	require.NoError(t, err)
	asyncReq := api.last(t)

	assert.Equal(t, syncReq.Method, asyncReq.Method)
	assert.Equal(t, syncReq.Path, asyncReq.Path)
	assert.Equal(t, syncReq.RawQuery, asyncReq.RawQuery)
	assert.Equal(t, syncReq.Body, asyncReq.Body)
	assert.Equal(t, syncReq.Header.Get("Authorization"), asyncReq.Header.Get("Authorization"))
}

func TestAsyncClient_ConcurrentCalls(t *testing.T) {
	ac, api := newFakeAsyncClient(t, http.StatusOK, contactFixture)

	futures := make([]*Future[*Contact], 5)
	for i := range futures {
		futures[i] = ac.Contacts.Get(context.Background(), "book_123", "contact_123")
	}

	contacts, err := WaitAll(futures...)
	require.NoError(t, err)
	require.Len(t, contacts, 5)
	for _, c := range contacts {
		assert.Equal(t, "contact_123", c.ID)
	}
	assert.Equal(t, 5, api.count())
}

func TestAsyncClient_ErrorsMatchSync(t *testing.T) {
	ac, _ := newFakeAsyncClient(t, http.StatusNotFound, `{"message":"not found","code":"missing"}`)

	_, err := ac.Domains.Get(context.Background(), 9).Await()
	require.ErrorIs(t, err, ErrNotFound)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "missing", apiErr.Code)
	assert.Equal(t, ResourceDomain, apiErr.ResourceType)
}

func TestAsyncClient_ValidationSurfacesThroughFuture(t *testing.T) {
	ac, api := newFakeAsyncClient(t, http.StatusOK, `{"success":true}`)

	_, err := ac.Campaigns.Pause(context.Background(), "").Await()
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, api.count())
}

func TestAsyncClient_SharesTransportWithSync(t *testing.T) {
	c, api := newFakeClient(t, http.StatusOK, `[]`)
	ac := c.Async()

	_, err := ac.Domains.List(context.Background()).Await()
	require.NoError(t, err)
	assert.Equal(t, c.Config(), ac.Config())

	require.NoError(t, ac.Close())
	_, err = c.Domains.List(context.Background())
	assert.ErrorIs(t, err, ErrClientClosed)
	assert.Equal(t, 1, api.count())
}
