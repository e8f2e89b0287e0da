package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolfedh/adoctree/internal/config"
	"github.com/rolfedh/adoctree/pkg/domain"
)

func TestRunListing(t *testing.T) {
	writeDoc := func(t *testing.T, path, content string) {
		t.Helper()
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	cfg := config.Default()

	t.Run("Explicit file prints header and tree", func(t *testing.T) {
		dir := t.TempDir()
		doc := filepath.Join(dir, "guide.adoc")
		writeDoc(t, doc, "include::chapter.adoc[]\n")
		writeDoc(t, filepath.Join(dir, "chapter.adoc"), "plain text\n")

		var buf bytes.Buffer
		err := RunListing(&buf, ListingOptions{Args: []string{doc}, Config: cfg})
		require.NoError(t, err)

		want := "Listing " + doc + ":\n" + doc + "\n    chapter.adoc\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("Blank line separates items but not after last", func(t *testing.T) {
		dir := t.TempDir()
		a := filepath.Join(dir, "a.adoc")
		b := filepath.Join(dir, "b.adoc")
		writeDoc(t, a, "text\n")
		writeDoc(t, b, "text\n")

		var buf bytes.Buffer
		err := RunListing(&buf, ListingOptions{Args: []string{a, b}, Config: cfg})
		require.NoError(t, err)

		want := "Listing " + a + ":\n" + a + "\n" +
			"\n" +
			"Listing " + b + ":\n" + b + "\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("Glob expands in sorted order", func(t *testing.T) {
		dir := t.TempDir()
		writeDoc(t, filepath.Join(dir, "b.adoc"), "text\n")
		writeDoc(t, filepath.Join(dir, "a.adoc"), "text\n")

		var buf bytes.Buffer
		err := RunListing(&buf, ListingOptions{Args: []string{filepath.Join(dir, "*.adoc")}, Config: cfg})
		require.NoError(t, err)

		out := buf.String()
		assert.Less(t, strings.Index(out, "a.adoc"), strings.Index(out, "b.adoc"))
	})

	t.Run("Pattern without matches is skipped", func(t *testing.T) {
		var buf bytes.Buffer
		err := RunListing(&buf, ListingOptions{Args: []string{"no/such/*.adoc"}, Config: cfg})
		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("Malformed pattern fails", func(t *testing.T) {
		var buf bytes.Buffer
		err := RunListing(&buf, ListingOptions{Args: []string{"["}, Config: cfg})
		assert.Error(t, err)
	})

	t.Run("Directory match guesses its root document", func(t *testing.T) {
		dir := t.TempDir()
		writeDoc(t, filepath.Join(dir, "master.adoc"), "text\n")

		var buf bytes.Buffer
		err := RunListing(&buf, ListingOptions{Args: []string{dir}, Config: cfg})
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "Listing "+dir+":\n")
		assert.Contains(t, buf.String(), "master.adoc\n")
	})

	t.Run("Directory without document aborts", func(t *testing.T) {
		dir := t.TempDir()

		var buf bytes.Buffer
		err := RunListing(&buf, ListingOptions{Args: []string{dir}, Config: cfg})
		assert.ErrorIs(t, err, domain.ErrNoDocument)
	})

	t.Run("Trailing separator failure is soft", func(t *testing.T) {
		dir := t.TempDir()

		var buf bytes.Buffer
		err := RunListing(&buf, ListingOptions{Args: []string{dir + "/"}, Config: cfg})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "no document found")
	})

	t.Run("No arguments lists default document bare", func(t *testing.T) {
		dir := t.TempDir()
		writeDoc(t, filepath.Join(dir, "master.adoc"), "text\n")
		t.Chdir(dir)

		var buf bytes.Buffer
		err := RunListing(&buf, ListingOptions{Config: cfg})
		require.NoError(t, err)

		assert.Equal(t, "master.adoc\n", buf.String())
	})

	t.Run("No arguments without document fails", func(t *testing.T) {
		t.Chdir(t.TempDir())

		var buf bytes.Buffer
		err := RunListing(&buf, ListingOptions{Config: cfg})
		assert.ErrorIs(t, err, domain.ErrNoDocument)
	})
}
