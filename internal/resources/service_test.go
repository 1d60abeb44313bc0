package resources

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"server/internal/storage"
)

func TestService_MaterializesAndServes(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	svc, err := NewService(ctx, store)
	require.NoError(t, err)

	list := svc.List()
	require.Len(t, list, 2)

	_, data, err := svc.Get(ctx, "customer-interview-template.txt")
	require.NoError(t, err)
	require.Contains(t, string(data), "CUSTOMER INTERVIEW TEMPLATE")

	// The materialized copy wins over the shipped contents.
	_, err = store.Write(ctx, "customer-interview-template.txt", []byte("edited by the operator"))
	require.NoError(t, err)
	_, data, err = svc.Get(ctx, "customer-interview-template.txt")
	require.NoError(t, err)
	require.Equal(t, "edited by the operator", string(data))

	_, _, err = svc.Get(ctx, "nope.txt")
	require.Error(t, err)
}

func TestService_MaterializeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := storage.NewFileStore(dir)
	require.NoError(t, err)

	_, err = NewService(ctx, store)
	require.NoError(t, err)
	_, err = store.Write(ctx, "startup-validation-tracker.csv", []byte("operator edit"))
	require.NoError(t, err)

	// A restart must not clobber operator edits.
	svc, err := NewService(ctx, store)
	require.NoError(t, err)
	_, data, err := svc.Get(ctx, "startup-validation-tracker.csv")
	require.NoError(t, err)
	require.Equal(t, "operator edit", string(data))
}

func TestService_BundleContainsEveryTemplate(t *testing.T) {
	ctx := context.Background()
	svc, err := NewService(ctx, nil)
	require.NoError(t, err)

	data, err := svc.Bundle(ctx)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	require.Contains(t, strings.Join(names, ","), "customer-interview-template.txt")
	require.Contains(t, strings.Join(names, ","), "startup-validation-tracker.csv")
}
