package webtest

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
)

// CaptureScreenshot takes a full-page screenshot and writes it to
// screenshots/<yyyy-MM-dd>/<testName>_<HHmmss>.png, creating the directory
// if needed. It returns the path of the written file. Directory creation and
// capture errors propagate; nothing is retried.
func CaptureScreenshot(page playwright.Page, testName string) (string, error) {
	now := time.Now()
	dir := filepath.Join(ScreenshotRoot, now.Format("2006-01-02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", testName, now.Format("150405")))
	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("capture screenshot %s: %w", path, err)
	}
	return path, nil
}
