package platform

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"tipbot/config"
	"tipbot/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockHTTPClient implements HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func newTestClient(doFunc func(req *http.Request) (*http.Response, error)) *Client {
	cfg := config.PlatformConfig{APIBaseURL: "http://platform.local", APIToken: "platform-token"}
	return NewClient(cfg, &mockHTTPClient{doFunc: doFunc}, zerolog.New(io.Discard))
}

func TestPlatformClient_LookupUser(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "http://platform.local/users/bob", req.URL.String())
		assert.Equal(t, "Bearer platform-token", req.Header.Get("Authorization"))
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"id":2002,"username":"bob"}`)),
		}, nil
	})

	user, err := client.LookupUser(context.Background(), "bob")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(2002), user.ID)
	assert.Equal(t, "bob", user.Username)
}

func TestPlatformClient_LookupUser_NotFound(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Body:       io.NopCloser(strings.NewReader(`{"message":"Not Found"}`)),
		}, nil
	})

	user, err := client.LookupUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestPlatformClient_LookupUser_EscapesHandle(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/users/we%2Fird", req.URL.EscapedPath())
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"id":9,"username":"we/ird"}`)),
		}, nil
	})

	_, err := client.LookupUser(context.Background(), "we/ird")
	require.NoError(t, err)
}

func TestPlatformClient_LookupUser_ServerError(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("bad gateway")),
		}, nil
	})

	_, err := client.LookupUser(context.Background(), "bob")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindServiceFailure, appErr.Kind)
}

func TestPlatformClient_PostReply(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "http://platform.local/replies", req.URL.String())

		var body replyRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "42", body.ThreadRef)
		assert.Contains(t, body.Body, "tip successfully sent")

		return &http.Response{
			StatusCode: http.StatusCreated,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
		}, nil
	})

	err := client.PostReply(context.Background(), "42", "`5.00 TRTL` tip successfully sent to @bob!")
	require.NoError(t, err)
}

func TestPlatformClient_PostReply_Rejected(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusForbidden,
			Body:       io.NopCloser(strings.NewReader(`{"message":"forbidden"}`)),
		}, nil
	})

	err := client.PostReply(context.Background(), "42", "hello")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindServiceFailure, appErr.Kind)
}
