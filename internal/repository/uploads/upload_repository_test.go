package uploads

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(UploadConfig{Dir: dir, PublicPath: "/uploads/payment-proofs"})

	publicPath, err := repo.Save("order-1", "bukti transfer.PNG", strings.NewReader("image bytes"))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^/uploads/payment-proofs/order-1-\d+\.PNG$`), publicPath)

	stored := filepath.Join(dir, filepath.Base(publicPath))
	content, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(content))
}

func TestSaveWithoutExtension(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(UploadConfig{Dir: dir, PublicPath: "/uploads/payment-proofs"})

	publicPath, err := repo.Save("order-2", "bukti", strings.NewReader("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(publicPath, ".bin"))
}

func TestSaveCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "payment-proofs")
	repo := NewFileRepository(UploadConfig{Dir: dir, PublicPath: "/uploads/payment-proofs"})

	_, err := repo.Save("order-3", "bukti.jpg", strings.NewReader("x"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
