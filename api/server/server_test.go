// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanchego/utils/logging"
)

func TestServer(t *testing.T) {
	require := require.New(t)

	s, err := New(logging.NoLog{}, Config{
		Host:           "127.0.0.1",
		AllowedOrigins: []string{"https://rights.example"},
	})
	require.NoError(err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})
	require.NoError(s.AddRoute(handler, "ping"))
	err = s.AddRoute(handler, "ping")
	require.ErrorIs(err, errAlreadyRegistered)

	dispatched := make(chan error, 1)
	go func() {
		dispatched <- s.Dispatch()
	}()

	req, err := http.NewRequest(http.MethodGet, "http://"+s.Addr().String()+"/ext/ping", nil)
	require.NoError(err)
	req.Header.Set("Origin", "https://rights.example")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(err)
	require.NoError(resp.Body.Close())
	require.Equal(http.StatusOK, resp.StatusCode)
	require.Equal("pong", string(body))
	require.Equal("https://rights.example", resp.Header.Get("Access-Control-Allow-Origin"))

	resp, err = http.Get("http://" + s.Addr().String() + "/ext/unknown")
	require.NoError(err)
	require.NoError(resp.Body.Close())
	require.Equal(http.StatusNotFound, resp.StatusCode)

	require.NoError(s.Shutdown())
	require.NoError(<-dispatched)
}

func TestServerCompressesResponses(t *testing.T) {
	require := require.New(t)

	s, err := New(logging.NoLog{}, Config{
		Host:           "127.0.0.1",
		AllowedOrigins: []string{"*"},
	})
	require.NoError(err)

	// Large enough to pass the minimum compression size.
	payload := bytes.Repeat([]byte("rights"), 1_000)
	require.NoError(s.AddRoute(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(payload)
	}), "large"))

	dispatched := make(chan error, 1)
	go func() {
		dispatched <- s.Dispatch()
	}()

	req, err := http.NewRequest(http.MethodGet, "http://"+s.Addr().String()+"/ext/large", nil)
	require.NoError(err)
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(err)
	require.Equal(http.StatusOK, resp.StatusCode)
	require.Equal("gzip", resp.Header.Get("Content-Encoding"))

	reader, err := gzip.NewReader(resp.Body)
	require.NoError(err)
	body, err := io.ReadAll(reader)
	require.NoError(err)
	require.NoError(resp.Body.Close())
	require.Equal(payload, body)

	require.NoError(s.Shutdown())
	require.NoError(<-dispatched)
}
