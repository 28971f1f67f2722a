// Package webtest provides a small toolkit for writing Playwright browser
// tests in Go: launch/context option presets, browser fixtures with proper
// teardown ordering, and a handful of page interaction helpers.
//
// A Fixture owns exactly one Playwright driver and one browser for its
// lifetime. Pages and contexts created from a fixture are transient and must
// be closed by the caller before the fixture is torn down.
package webtest

import (
	"os"
	"sync"
	"testing"

	"github.com/playwright-community/playwright-go"
)

// Fixture manages a Playwright driver and browser instance for tests.
type Fixture struct {
	PW      *playwright.Playwright
	Browser playwright.Browser
}

// NewFixture starts Playwright and launches a Chromium browser with the CI
// preset. Set HEADLESS=false to launch with the debug preset (headed browser,
// slow motion, devtools) instead. Teardown is registered with t.Cleanup, so
// the browser is closed and the driver stopped on every exit path, in that
// order.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()

	opts := CILaunchOptions()
	if os.Getenv("HEADLESS") == "false" {
		opts = DebugLaunchOptions()
	}
	return NewFixtureWithOptions(t, opts)
}

// NewFixtureWithOptions starts Playwright and launches a Chromium browser
// with the given launch options.
func NewFixtureWithOptions(t *testing.T, opts playwright.BrowserTypeLaunchOptions) *Fixture {
	t.Helper()

	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start playwright: %v", err)
	}

	browser, err := pw.Chromium.Launch(opts)
	if err != nil {
		_ = pw.Stop()
		t.Fatalf("failed to launch browser: %v", err)
	}

	f := &Fixture{PW: pw, Browser: browser}
	t.Cleanup(f.Close)
	return f
}

// NewContext creates a new browser context with isolated cookies and storage
// and the default timeouts applied.
func (f *Fixture) NewContext(t *testing.T) playwright.BrowserContext {
	t.Helper()
	return f.NewContextWithOptions(t, playwright.BrowserNewContextOptions{})
}

// NewContextWithOptions creates a new browser context with caller-provided
// options. The context is not closed automatically; callers own it.
func (f *Fixture) NewContextWithOptions(t *testing.T, opts playwright.BrowserNewContextOptions) playwright.BrowserContext {
	t.Helper()

	ctx, err := f.Browser.NewContext(opts)
	if err != nil {
		t.Fatalf("failed to create browser context: %v", err)
	}
	ctx.SetDefaultTimeout(DefaultTimeoutMs)
	ctx.SetDefaultNavigationTimeout(NavigationTimeoutMs)
	return ctx
}

// NewPage creates a new page in a fresh context with default timeouts.
// The page is not closed automatically; callers own it.
func (f *Fixture) NewPage(t *testing.T) playwright.Page {
	t.Helper()

	page, err := f.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	page.SetDefaultTimeout(DefaultTimeoutMs)
	page.SetDefaultNavigationTimeout(NavigationTimeoutMs)
	return page
}

// Close releases the fixture's resources: browser first, then the driver.
func (f *Fixture) Close() {
	if f.Browser != nil {
		_ = f.Browser.Close()
	}
	if f.PW != nil {
		_ = f.PW.Stop()
	}
}

var (
	sharedMu      sync.Mutex
	sharedFixture *Fixture
)

// SharedFixture returns a process-wide fixture, creating it on first use.
// The browser is reused across all tests that call this, trading isolation
// for throughput. Tests must create and close their own pages and contexts;
// concurrent tests must never share a single page. Call CloseSharedFixture
// from TestMain after m.Run.
func SharedFixture(t *testing.T) *Fixture {
	t.Helper()

	sharedMu.Lock()
	defer sharedMu.Unlock()

	if sharedFixture != nil {
		return sharedFixture
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(CILaunchOptions())
	if err != nil {
		_ = pw.Stop()
		t.Fatalf("failed to launch shared browser: %v", err)
	}

	sharedFixture = &Fixture{PW: pw, Browser: browser}
	return sharedFixture
}

// CloseSharedFixture tears down the shared fixture if one was created.
func CloseSharedFixture() {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if sharedFixture == nil {
		return
	}
	sharedFixture.Close()
	sharedFixture = nil
}
