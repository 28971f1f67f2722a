//go:build acceptance
// +build acceptance

package acceptance

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownload_SuggestedFilename(t *testing.T) {
	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		gotoPath(t, f.Page, f.Site, "/download")

		download, err := f.Page.ExpectDownload(func() error {
			return f.Page.Locator("#download-report").Click()
		})
		require.NoError(t, err)
		assert.Equal(t, "report.csv", download.SuggestedFilename())
	})
}

func TestDownload_SaveAndReadContent(t *testing.T) {
	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		gotoPath(t, f.Page, f.Site, "/download")

		download, err := f.Page.ExpectDownload(func() error {
			return f.Page.Locator("#download-report").Click()
		})
		require.NoError(t, err)

		target := filepath.Join(t.TempDir(), download.SuggestedFilename())
		require.NoError(t, download.SaveAs(target))

		content, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "id,name\n1,Ada Lovelace\n2,Alan Turing\n", string(content))
	})
}
