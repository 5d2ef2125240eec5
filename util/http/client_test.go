package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	t.Parallel()

	client := NewHTTPClient()
	assert.NotNil(t, client)

	httpClient, ok := client.(*HTTPClient)
	require.True(t, ok)
	assert.NotNil(t, httpClient.client)
	assert.Equal(t, 30*time.Second, httpClient.client.Timeout)
}

func TestHTTPClient_DoHTTPRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		requestParam *RequestParam
		setupServer  func() *httptest.Server
		wantErr      bool
		wantErrMsg   string
	}{
		{
			name: "successful GET request",
			requestParam: &RequestParam{
				Method:     "GET",
				RequestURI: "", // set from the test server
			},
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "GET", r.Method)
					w.WriteHeader(http.StatusOK)
					_, _ = w.Write([]byte(`{"message": "success"}`))
				}))
			},
			wantErr: false,
		},
		{
			name: "successful POST request with JSON body",
			requestParam: &RequestParam{
				Method:     "POST",
				RequestURI: "",
				Body:       map[string]interface{}{"key": "value"},
				Header: map[string]string{
					"Content-Type": "application/json",
				},
			},
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "POST", r.Method)
					assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

					body, err := io.ReadAll(r.Body)
					require.NoError(t, err)

					var data map[string]interface{}
					err = json.Unmarshal(body, &data)
					require.NoError(t, err)
					assert.Equal(t, "value", data["key"])

					w.WriteHeader(http.StatusOK)
					_, _ = w.Write([]byte(`{"received": true}`))
				}))
			},
			wantErr: false,
		},
		{
			name: "successful POST request with io.Reader body",
			requestParam: &RequestParam{
				Method:     "POST",
				RequestURI: "",
				Body:       strings.NewReader(`{"reader": "body"}`),
				Header: map[string]string{
					"Content-Type": "application/json",
				},
			},
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "POST", r.Method)

					body, err := io.ReadAll(r.Body)
					require.NoError(t, err)
					assert.Equal(t, `{"reader": "body"}`, string(body))

					w.WriteHeader(http.StatusOK)
					_, _ = w.Write([]byte(`{"received": true}`))
				}))
			},
			wantErr: false,
		},
		{
			name: "server returns error status",
			requestParam: &RequestParam{
				Method:     "GET",
				RequestURI: "",
			},
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"error": "server error"}`))
				}))
			},
			wantErr:    true,
			wantErrMsg: "HTTP request failed with status 500",
		},
		{
			name: "request timeout",
			requestParam: &RequestParam{
				Method:     "GET",
				RequestURI: "",
				Timeout:    100 * time.Millisecond,
			},
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					time.Sleep(200 * time.Millisecond)
					w.WriteHeader(http.StatusOK)
				}))
			},
			wantErr:    true,
			wantErrMsg: "context deadline exceeded",
		},
		{
			name:         "nil request param",
			requestParam: nil,
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
				}))
			},
			wantErr:    true,
			wantErrMsg: "request param is nil",
		},
		{
			name: "invalid URL",
			requestParam: &RequestParam{
				Method:     "GET",
				RequestURI: "://invalid-url",
			},
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
				}))
			},
			wantErr:    true,
			wantErrMsg: "missing protocol scheme",
		},
		{
			name: "JSON marshal failure",
			requestParam: &RequestParam{
				Method:     "POST",
				RequestURI: "",
				Body:       make(chan int), // not serializable
			},
			setupServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
				}))
			},
			wantErr:    true,
			wantErrMsg: "json: unsupported type: chan int",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var server *httptest.Server
			if tt.setupServer != nil {
				server = tt.setupServer()
				if server != nil {
					defer server.Close()
					if tt.requestParam != nil && tt.requestParam.RequestURI == "" {
						tt.requestParam.RequestURI = server.URL
					}
				}
			}

			client := NewHTTPClient()
			ctx := context.Background()
			err := client.DoHTTPRequest(ctx, tt.requestParam)

			if tt.wantErr {
				require.Error(t, err)
				if tt.wantErrMsg != "" {
					assert.Contains(t, err.Error(), tt.wantErrMsg)
				}
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestHTTPClient_DoHTTPRequest_DecodesResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"name": "u2net", "ok": true}`))
	}))
	defer server.Close()

	resp := struct {
		Name string `json:"name"`
		OK   bool   `json:"ok"`
	}{}

	client := NewHTTPClient()
	err := client.DoHTTPRequest(context.Background(), &RequestParam{
		Method:     "GET",
		RequestURI: server.URL,
		Response:   &resp,
	})
	require.NoError(t, err)
	assert.Equal(t, "u2net", resp.Name)
	assert.True(t, resp.OK)
}
