package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(handler http.Handler, config HttpConfig) *HttpServer {
	return NewHttpServer(HttpServerParams{
		Context: context.Background(),
		Config:  config,
		Handlers: []*HttpHandler{
			{Name: "/", Handler: handler},
		},
		Logger: zap.NewNop(),
	})
}

func TestServer_ServeAndShutdown(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	server := newTestServer(handler, HttpConfig{Host: "127.0.0.1", Port: 0})

	require.NoError(t, server.Listen(context.Background()))
	go server.Serve()

	res, err := http.Get(fmt.Sprintf("http://%s/", server.Addr()))
	require.NoError(t, err)
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "ok", string(body))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, server.Shutdown(ctx))
}

func TestServer_ListenFailsWhenPortTaken(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	port := listener.Addr().(*net.TCPAddr).Port

	server := newTestServer(http.NotFoundHandler(), HttpConfig{Host: "127.0.0.1", Port: port})

	err = server.Listen(context.Background())
	assert.Error(t, err)
}
