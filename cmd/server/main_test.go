package main

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientEnqueueAfterShutdown(t *testing.T) {
	t.Parallel()

	client := &WebSocketClient{send: make(chan interface{}, 4)}

	client.enqueue("before")
	client.shutdown()

	// Enqueueing on a closed client is a no-op, not a panic.
	client.enqueue("after")
	// Closing twice is also safe.
	client.shutdown()

	msg, ok := <-client.send
	assert.True(t, ok)
	assert.Equal(t, "before", msg)

	_, ok = <-client.send
	assert.False(t, ok)
}

func TestClientShutdownRacesEnqueue(t *testing.T) {
	t.Parallel()

	client := &WebSocketClient{send: make(chan interface{}, 4)}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				client.enqueue(j)
			}
		}()
	}

	// Shut down mid-flight; no send may hit the closed channel.
	client.shutdown()
	wg.Wait()

	for range client.send {
	}
}

func TestClientEnqueueDropsWhenFull(t *testing.T) {
	t.Parallel()

	client := &WebSocketClient{send: make(chan interface{}, 1)}

	client.enqueue(1)
	client.enqueue(2)

	assert.Equal(t, 1, <-client.send)
	assert.Len(t, client.send, 0)
}
