package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const order = `{
	"id": "66f1c2",
	"documentTitle": "VEHICLE PURCHASE ORDER",
	"transactionDate": "2025-05-04T10:00:00Z",
	"amount": 2500000,
	"balance": 0,
	"paymentMethods": [{"method": "cash", "amount": 2500000}]
}`

func setup(t *testing.T) {
	t.Helper()
	t.Setenv("SHOWROOMDOCS_ASSET_ROOT", t.TempDir())
	t.Setenv("SHOWROOMDOCS_LOG_LEVEL", "error")
}

func TestRenderToFile(t *testing.T) {
	setup(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "order.json")
	require.NoError(t, os.WriteFile(in, []byte(order), 0o644))
	out := filepath.Join(dir, "order.pdf")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"render", "-o", out, in}, nil, &stdout, &stderr))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Zero(t, stdout.Len())
}

func TestRenderTokenFromStdin(t *testing.T) {
	setup(t)
	in := strings.NewReader(`{"id":"t1","fromMrMrs":"Ahmed","amountReceived":50000}`)

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"render", "-token"}, in, &stdout, &bytes.Buffer{}))
	assert.True(t, bytes.HasPrefix(stdout.Bytes(), []byte("%PDF-")))
}

func TestServe(t *testing.T) {
	setup(t)
	in := strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"amount_in_words","arguments":{"amount":100000}}}` + "\n")

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"serve"}, in, &stdout, &bytes.Buffer{}))
	assert.Contains(t, stdout.String(), "One Lakh Only")
}

func TestUsageErrors(t *testing.T) {
	setup(t)
	ctx := context.Background()

	assert.ErrorIs(t, run(ctx, nil, nil, nil, nil), errUsage)
	assert.ErrorIs(t, run(ctx, []string{"print"}, nil, &bytes.Buffer{}, &bytes.Buffer{}), errUsage)
	assert.ErrorIs(t, run(ctx, []string{"render", "a.json", "b.json"}, nil, &bytes.Buffer{}, &bytes.Buffer{}), errUsage)
	assert.Error(t, run(ctx, []string{"render", "missing.json"}, nil, &bytes.Buffer{}, &bytes.Buffer{}))
}

func TestBadConfig(t *testing.T) {
	setup(t)
	t.Setenv("SHOWROOMDOCS_CODE_SYMBOLOGY", "pdf417")
	assert.Error(t, run(context.Background(), []string{"render"}, strings.NewReader(order), &bytes.Buffer{}, &bytes.Buffer{}))
}
