//go:build acceptance
// +build acceptance

package acceptance

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"github.com/akerstrom/webtest"
	"github.com/akerstrom/webtest/internal/testsite"
	"github.com/akerstrom/webtest/pages"
)

// TestFixtures bundles all commonly needed test fixtures: the local site
// under test, a browser fixture, a context, a page and the home Page Object
// pointed at the local site.
type TestFixtures struct {
	Site *testsite.Site
	FX   *webtest.Fixture
	Ctx  playwright.BrowserContext
	Page playwright.Page
	Home *pages.HomePage
}

// WithTestFixtures creates all fixtures, registers cleanup with t.Cleanup(),
// and calls the test function. Each test gets its own browser.
func WithTestFixtures(t *testing.T, fn func(t *testing.T, f *TestFixtures)) {
	t.Helper()

	site := testsite.New(t)
	t.Cleanup(site.Close)

	fx := webtest.NewFixture(t)

	ctx := fx.NewContext(t)
	t.Cleanup(func() { _ = ctx.Close() })

	page, err := ctx.NewPage()
	require.NoError(t, err, "failed to create page")

	fn(t, &TestFixtures{
		Site: site,
		FX:   fx,
		Ctx:  ctx,
		Page: page,
		Home: pages.NewHomePageWithURL(page, site.URL+"/"),
	})
}

// WithSharedBrowser creates the local site and hands the test the shared,
// process-wide browser fixture. Tests create and must close their own pages
// and contexts; the browser itself is torn down once from TestMain.
func WithSharedBrowser(t *testing.T, fn func(t *testing.T, site *testsite.Site, fx *webtest.Fixture)) {
	t.Helper()

	site := testsite.New(t)
	t.Cleanup(site.Close)

	fn(t, site, webtest.SharedFixture(t))
}

// gotoPath navigates the page to a path on the test site and waits for
// DOMContentLoaded.
func gotoPath(t *testing.T, page playwright.Page, site *testsite.Site, path string) {
	t.Helper()

	_, err := page.Goto(site.URL+path, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	})
	require.NoError(t, err, "failed to navigate to %s", path)
}

// evalNumber evaluates a JS expression expected to yield a number.
func evalNumber(t *testing.T, page playwright.Page, expression string) float64 {
	t.Helper()

	result, err := page.Evaluate(expression)
	require.NoError(t, err, "failed to evaluate %s", expression)
	switch v := result.(type) {
	case int:
		return float64(v)
	case float64:
		return v
	default:
		t.Fatalf("expression %s returned %T, want a number", expression, result)
		return 0
	}
}
