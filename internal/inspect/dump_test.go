package inspect

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump_GetFormat(t *testing.T) {
	var out bytes.Buffer
	dumper := NewDumper(&out)

	err := dumper.Dump(Record{
		Method: "GET",
		Path:   "/status",
		Headers: []Header{
			{Name: "Host", Value: "example.com"},
			{Name: "X-Test", Value: "1"},
		},
	})
	require.NoError(t, err)

	expected := "\n===== GET REQUEST ======\n" +
		"Path: /status\n" +
		"Headers:\n" +
		"  Host: example.com\n" +
		"  X-Test: 1\n"

	assert.Equal(t, expected, out.String())
}

func TestDump_PostFormat(t *testing.T) {
	var out bytes.Buffer
	dumper := NewDumper(&out)

	err := dumper.Dump(Record{
		Method: "POST",
		Path:   "/webhook",
		Headers: []Header{
			{Name: "Host", Value: "example.com"},
			{Name: "Content-Length", Value: "7"},
		},
		Body:    `{"a":1}`,
		HasBody: true,
	})
	require.NoError(t, err)

	expected := "\n===== POST REQUEST ======\n" +
		"Path: /webhook\n" +
		"Headers:\n" +
		"  Host: example.com\n" +
		"  Content-Length: 7\n" +
		"Body:\n" +
		"{\"a\":1}\n"

	assert.Equal(t, expected, out.String())
}

// syncBuffer guards the buffer so the test only measures the
// dumper's own block serialization.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestDump_ConcurrentBlocksDoNotInterleave(t *testing.T) {
	var out syncBuffer
	dumper := NewDumper(&out)

	const writers = 16

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			dumper.Dump(Record{
				Method:  "POST",
				Path:    fmt.Sprintf("/req/%d", i),
				Headers: []Header{{Name: "X-Writer", Value: fmt.Sprintf("%d", i)}},
				Body:    fmt.Sprintf("writer %d", i),
				HasBody: true,
			})
		}(i)
	}
	wg.Wait()

	dump := out.String()

	// every block must appear contiguous and intact
	for i := 0; i < writers; i++ {
		block := "\n===== POST REQUEST ======\n" +
			fmt.Sprintf("Path: /req/%d\n", i) +
			"Headers:\n" +
			fmt.Sprintf("  X-Writer: %d\n", i) +
			"Body:\n" +
			fmt.Sprintf("writer %d\n", i)

		assert.Equal(t, 1, strings.Count(dump, block))
	}
}
