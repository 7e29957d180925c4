package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func fakeModelServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{apiKey: "k", baseURL: srv.URL, model: "gemini-2.5-flash", client: srv.Client()}
}

func sseChunk(text string) string {
	return fmt.Sprintf("data: {\"candidates\":[{\"content\":{\"parts\":[{\"text\":%q}]}}]}\n\n", text)
}

func TestStreamMessageDeliversFragmentsInOrder(t *testing.T) {
	c := fakeModelServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Contains(t, r.URL.RawQuery, "alt=sse")
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, sseChunk("Choc"))
		fmt.Fprint(w, sseChunk("olate "))
		fmt.Fprint(w, sseChunk("bombs!"))
	})

	var got []string
	err := c.StreamMessage(context.Background(), "be tasty", "hi", func(s string) error {
		got = append(got, s)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Choc", "olate ", "bombs!"}, got)
}

func TestStreamMessageHTTPError(t *testing.T) {
	c := fakeModelServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota"}`, http.StatusTooManyRequests)
	})

	err := c.StreamMessage(context.Background(), "", "hi", func(string) error { return nil })
	require.ErrorContains(t, err, "model API error (429)")
}

func TestStreamMessageCallbackErrorStopsStream(t *testing.T) {
	c := fakeModelServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sseChunk("one"))
		fmt.Fprint(w, sseChunk("two"))
	})

	sentinel := errors.New("stop")
	var calls int
	err := c.StreamMessage(context.Background(), "", "hi", func(string) error {
		calls++
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
	require.Equal(t, 1, calls)
}

func TestStreamMessageSkipsNonDataLines(t *testing.T) {
	c := fakeModelServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, ": keepalive\n\n")
		fmt.Fprint(w, sseChunk("hello"))
		fmt.Fprint(w, "data: [DONE]\n\n")
	})

	var got []string
	err := c.StreamMessage(context.Background(), "", "hi", func(s string) error {
		got = append(got, s)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"hello"}, got)
}

func TestStreamMessageMalformedChunk(t *testing.T) {
	c := fakeModelServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "data: {not json}\n\n")
	})

	err := c.StreamMessage(context.Background(), "", "hi", func(string) error { return nil })
	require.ErrorContains(t, err, "failed to parse stream chunk")
}
