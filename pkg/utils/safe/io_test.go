package safe_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/taskmine/pkg/utils/safe"
)

type failCloser struct {
	closed bool
}

func (c *failCloser) Close() error {
	c.closed = true
	return goerr.New("close failed")
}

func TestClose(t *testing.T) {
	ctx := context.Background()

	t.Run("nil closer is a no-op", func(t *testing.T) {
		safe.Close(ctx, nil)
	})

	t.Run("close errors do not propagate", func(t *testing.T) {
		c := &failCloser{}
		safe.Close(ctx, c)
		gt.Bool(t, c.closed).True()
	})
}

func TestWrite(t *testing.T) {
	ctx := context.Background()

	t.Run("nil writer is a no-op", func(t *testing.T) {
		safe.Write(ctx, nil, []byte("data"))
	})

	t.Run("writes all data", func(t *testing.T) {
		var buf bytes.Buffer
		safe.Write(ctx, &buf, []byte("hello"))
		gt.Value(t, buf.String()).Equal("hello")
	})
}
