package server

import (
	"io"
	"strings"
	"testing"

	"github.com/bastiangx/wordtrie/pkg/config"
	"github.com/bastiangx/wordtrie/pkg/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/goleak"
)

type harness struct {
	t      *testing.T
	dict   *trie.Dictionary
	in     *io.PipeWriter
	out    *msgpack.Decoder
	outRaw *io.PipeReader
	done   chan error
}

func startServer(t *testing.T, cfg *config.Config) *harness {
	t.Helper()
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()

	d := trie.New()
	srv := NewServerWithIO(d, cfg, inR, outW)
	h := &harness{
		t:      t,
		dict:   d,
		in:     inW,
		out:    msgpack.NewDecoder(outR),
		outRaw: outR,
		done:   make(chan error, 1),
	}
	go func() {
		err := srv.Start()
		outW.Close()
		h.done <- err
	}()

	var ready StatusFrame
	require.NoError(t, h.out.Decode(&ready))
	require.Equal(t, "ready", ready.Status)
	return h
}

func (h *harness) write(req Request) {
	h.t.Helper()
	b, err := msgpack.Marshal(req)
	require.NoError(h.t, err)
	_, err = h.in.Write(b)
	require.NoError(h.t, err)
}

func (h *harness) call(req Request, resp any) {
	h.t.Helper()
	h.write(req)
	require.NoError(h.t, h.out.Decode(resp))
}

func (h *harness) close() error {
	h.in.Close()
	err := <-h.done
	h.outRaw.Close()
	return err
}

func TestServerOps(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := startServer(t, nil)

	for i, w := range []string{"cat", "car", "cart"} {
		var resp Response
		h.call(Request{ID: "i", Op: OpInsert, Word: w}, &resp)
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, i+1, resp.Count)
	}

	var prefixCount, total Response
	h.call(Request{ID: "c1", Op: OpCount, Word: "ca"}, &prefixCount)
	assert.Equal(t, "c1", prefixCount.ID)
	assert.Equal(t, 3, prefixCount.Count)
	h.call(Request{ID: "c2", Op: OpCount, Word: trie.CountAll}, &total)
	assert.Equal(t, 3, total.Count)

	var hit, miss Response
	h.call(Request{ID: "h1", Op: OpContains, Word: "ca"}, &hit)
	assert.True(t, hit.Found)
	h.call(Request{ID: "h2", Op: OpContains, Word: "dog"}, &miss)
	assert.False(t, miss.Found)

	var search SearchResponse
	h.call(Request{ID: "s1", Op: OpSearch, Word: "ca", Limit: 2}, &search)
	assert.Equal(t, "s1", search.ID)
	assert.Equal(t, []string{"car", "cart"}, search.Words)
	assert.Equal(t, 2, search.Count)

	var removed Response
	h.call(Request{ID: "r1", Op: OpRemove, Word: "cart"}, &removed)
	assert.Equal(t, 2, removed.Count)
	assert.False(t, h.dict.Contains("cart"))

	var health Response
	h.call(Request{ID: "hc", Op: OpHealth}, &health)
	assert.Equal(t, "ok", health.Status)

	assert.NoError(t, h.close())
}

func TestServerSearchLimits(t *testing.T) {
	defer goleak.VerifyNone(t)
	cfg := config.DefaultConfig()
	cfg.Server.DefaultLimit = 2
	cfg.Server.MaxLimit = 3
	h := startServer(t, cfg)

	for _, w := range []string{"a", "ab", "abc", "abd", "abe"} {
		var resp Response
		h.call(Request{Op: OpInsert, Word: w}, &resp)
	}

	var defaulted, clamped, miss SearchResponse
	h.call(Request{ID: "default", Op: OpSearch, Word: "a"}, &defaulted)
	assert.Equal(t, []string{"a", "ab"}, defaulted.Words)

	h.call(Request{ID: "clamped", Op: OpSearch, Word: "a", Limit: 50}, &clamped)
	assert.Equal(t, []string{"a", "ab", "abc"}, clamped.Words)

	h.call(Request{ID: "miss", Op: OpSearch, Word: "zz", Limit: 5}, &miss)
	assert.Empty(t, miss.Words)
	assert.Equal(t, 0, miss.Count)

	assert.NoError(t, h.close())
}

func TestServerRejections(t *testing.T) {
	defer goleak.VerifyNone(t)
	cfg := config.DefaultConfig()
	cfg.Server.MaxWordLen = 5
	h := startServer(t, cfg)

	testCases := []struct {
		name string
		req  Request
		want string
	}{
		{"unknown_op", Request{ID: "x", Op: "frobnicate"}, "unknown op"},
		{"empty_insert", Request{ID: "x", Op: OpInsert}, "missing"},
		{"empty_remove", Request{ID: "x", Op: OpRemove}, "missing"},
		{"too_long", Request{ID: "x", Op: OpInsert, Word: "abcdef"}, "maximum length"},
		{"filtered", Request{ID: "x", Op: OpInsert, Word: "a b"}, "filter"},
		{"numbers", Request{ID: "x", Op: OpInsert, Word: "123"}, "filter"},
	}
	for _, tc := range testCases {
		var resp ErrorResponse
		h.call(tc.req, &resp)
		assert.Equal(t, 400, resp.Code, tc.name)
		assert.Equal(t, "x", resp.ID, tc.name)
		assert.True(t, strings.Contains(resp.Error, tc.want), "%s: %q", tc.name, resp.Error)
	}
	assert.Equal(t, 0, h.dict.Count(trie.CountAll))

	// a failed request does not end the session
	var resp Response
	h.call(Request{Op: OpInsert, Word: "ok"}, &resp)
	assert.Equal(t, 1, resp.Count)

	assert.NoError(t, h.close())
}

func TestServerFilterDisabled(t *testing.T) {
	defer goleak.VerifyNone(t)
	cfg := config.DefaultConfig()
	cfg.Server.EnableFilter = false
	h := startServer(t, cfg)

	var resp Response
	h.call(Request{Op: OpInsert, Word: "a b"}, &resp)
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, h.dict.IsWord("a b"))

	assert.NoError(t, h.close())
}

func TestServerMalformedFrame(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := startServer(t, nil)

	// 0xc1 is never used by msgpack
	_, err := h.in.Write([]byte{0xc1})
	require.NoError(t, err)

	var resp ErrorResponse
	require.NoError(t, h.out.Decode(&resp))
	assert.Equal(t, 400, resp.Code)

	err = h.close()
	assert.Error(t, err)
}
