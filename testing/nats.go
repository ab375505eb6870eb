package testing

import (
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

// natsReadyTimeout bounds the wait for the embedded server to accept clients.
const natsReadyTimeout = 5 * time.Second

// StartEmbeddedNATS runs a NATS server inside the test process and connects to it.
//
// The server binds a random loopback port. The connection and the server are
// torn down by t.Cleanup, connection first.
//
// Parameters:
//   - t: Test owning the server
//
// Returns:
//   - *server.Server: The running server
//   - *nats.Conn: A client connected to it
//
// Example:
//
//	_, nc := podtest.StartEmbeddedNATS(t)
//	pub, err := events.NewNATS(nc, "podbot")
//	sub, err := nc.SubscribeSync(pub.Subject("guild-1"))
func StartEmbeddedNATS(t *testing.T) (*server.Server, *nats.Conn) {
	t.Helper()

	ns, err := server.NewServer(&server.Options{Host: "127.0.0.1", Port: server.RANDOM_PORT, NoLog: true, NoSigs: true})
	if err != nil {
		t.Fatalf("embedded nats: %v", err)
	}
	go ns.Start()
	t.Cleanup(func() {
		ns.Shutdown()
		ns.WaitForShutdown()
	})

	if !ns.ReadyForConnections(natsReadyTimeout) {
		t.Fatalf("embedded nats not ready after %s", natsReadyTimeout)
	}

	nc, err := nats.Connect(ns.ClientURL(), nats.Name(t.Name()), nats.Timeout(2*time.Second))
	if err != nil {
		t.Fatalf("connect to embedded nats: %v", err)
	}
	t.Cleanup(nc.Close)

	return ns, nc
}
