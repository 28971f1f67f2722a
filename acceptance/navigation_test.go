//go:build acceptance
// +build acceptance

package acceptance

import (
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomePage_HasLoadedCorrectly(t *testing.T) {
	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		require.NoError(t, f.Home.Navigate())
		assert.True(t, f.Home.HasLoadedCorrectly(), "home page should pass all three load checks")
	})
}

func TestHomePage_Title(t *testing.T) {
	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		require.NoError(t, f.Home.Navigate())

		title, err := f.Home.Title()
		require.NoError(t, err)
		assert.Contains(t, title, "Playwright")
	})
}

func TestHomePage_HeroAndSearchVisible(t *testing.T) {
	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		require.NoError(t, f.Home.Navigate())

		assert.True(t, f.Home.IsHeroVisible())
		assert.True(t, f.Home.IsSearchVisible())
	})
}

func TestHomePage_ClickGetStarted(t *testing.T) {
	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		require.NoError(t, f.Home.Navigate())
		require.NoError(t, f.Home.ClickGetStarted())

		require.NoError(t, f.Page.WaitForURL("**/docs/intro"))
		assert.True(t, strings.HasSuffix(f.Home.CurrentURL(), "/docs/intro"))

		heading, err := f.Page.Locator("h1").TextContent()
		require.NoError(t, err)
		assert.Equal(t, "Installation", heading)
	})
}

func TestHomePage_NavLinkTexts(t *testing.T) {
	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		require.NoError(t, f.Home.Navigate())

		links, err := f.Home.NavLinkTexts()
		require.NoError(t, err)
		assert.Contains(t, links, "Docs")
		assert.Contains(t, links, "API")
		assert.Contains(t, links, "Community")
	})
}

func TestHomePage_PredicateFailsOnOtherPage(t *testing.T) {
	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		// The registration form has neither the Playwright title nor the
		// call-to-action, so the composite predicate must be false.
		gotoPath(t, f.Page, f.Site, "/form")
		assert.False(t, f.Home.HasLoadedCorrectly())
	})
}

func TestHomePage_PredicateRequiresNavBar(t *testing.T) {
	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		require.NoError(t, f.Home.Navigate())
		require.True(t, f.Home.HasLoadedCorrectly())

		_, err := f.Page.Evaluate(`() => { document.querySelector('nav.navbar').style.display = 'none'; }`)
		require.NoError(t, err)

		title, err := f.Home.Title()
		require.NoError(t, err)
		assert.Contains(t, title, "Playwright", "title stays valid; only the nav bar check should fail")
		assert.False(t, f.Home.HasLoadedCorrectly())
	})
}

func TestHomePage_PredicateRequiresTitle(t *testing.T) {
	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		require.NoError(t, f.Home.Navigate())
		require.True(t, f.Home.HasLoadedCorrectly())

		_, err := f.Page.Evaluate(`() => { document.title = 'Some other site'; }`)
		require.NoError(t, err)

		assert.True(t, f.Home.IsNavBarVisible(), "nav bar stays valid; only the title check should fail")
		assert.False(t, f.Home.HasLoadedCorrectly())
	})
}

func TestNavigation_BackAndForward(t *testing.T) {
	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		require.NoError(t, f.Home.Navigate())
		require.NoError(t, f.Home.ClickDocs())
		require.NoError(t, f.Page.WaitForURL("**/docs/intro"))

		_, err := f.Page.GoBack()
		require.NoError(t, err)
		assert.True(t, f.Home.HasLoadedCorrectly(), "back should land on the home page")

		_, err = f.Page.GoForward()
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(f.Home.CurrentURL(), "/docs/intro"))
	})
}

func TestNavigation_Reload(t *testing.T) {
	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		require.NoError(t, f.Home.Navigate())

		_, err := f.Page.Reload(playwright.PageReloadOptions{
			WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		})
		require.NoError(t, err)
		assert.True(t, f.Home.HasLoadedCorrectly(), "reload should keep the home page intact")
	})
}

func TestNavigation_CurrentURLTracksGoto(t *testing.T) {
	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		gotoPath(t, f.Page, f.Site, "/community")
		assert.Equal(t, f.Site.URL+"/community", f.Home.CurrentURL())
	})
}
