// Package pages contains Page Objects binding element locators and actions
// for the sites the suite drives, decoupling tests from raw selectors.
package pages

import (
	"strings"

	"github.com/playwright-community/playwright-go"
	"github.com/samber/lo"
)

// HomeURL is the public Playwright site the HomePage wraps by default.
const HomeURL = "https://playwright.dev/"

// HomePage wraps the playwright.dev landing page. It holds a page handle it
// does not own (the creating test closes it) and re-resolves every locator
// on access, so it tolerates DOM re-renders between calls.
type HomePage struct {
	page playwright.Page
	url  string
}

// NewHomePage returns a HomePage targeting the public site.
func NewHomePage(page playwright.Page) *HomePage {
	return NewHomePageWithURL(page, HomeURL)
}

// NewHomePageWithURL returns a HomePage targeting url instead of the public
// site, for hermetic runs against a local stand-in.
func NewHomePageWithURL(page playwright.Page, url string) *HomePage {
	return &HomePage{page: page, url: url}
}

// Locator accessors. Each call returns a fresh lazy descriptor; nothing is
// cached.

func (h *HomePage) getStartedLink() playwright.Locator {
	return h.page.GetByRole("link", playwright.PageGetByRoleOptions{Name: "Get started"}).First()
}

func (h *HomePage) navBar() playwright.Locator {
	return h.page.Locator("nav.navbar")
}

func (h *HomePage) heroTitle() playwright.Locator {
	return h.page.Locator("h1.hero__title")
}

func (h *HomePage) docsLink() playwright.Locator {
	return h.page.Locator("nav.navbar a[href*='docs']").First()
}

func (h *HomePage) searchButton() playwright.Locator {
	return h.page.Locator("button.search-toggle")
}

// Navigate opens the page and waits for DOMContentLoaded.
func (h *HomePage) Navigate() error {
	_, err := h.page.Goto(h.url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	})
	return err
}

// ClickGetStarted follows the primary call-to-action link.
func (h *HomePage) ClickGetStarted() error {
	return h.getStartedLink().Click()
}

// ClickDocs follows the docs link in the navigation bar.
func (h *HomePage) ClickDocs() error {
	return h.docsLink().Click()
}

// Title returns the document title.
func (h *HomePage) Title() (string, error) {
	return h.page.Title()
}

// CurrentURL returns the page's current URL.
func (h *HomePage) CurrentURL() string {
	return h.page.URL()
}

// IsNavBarVisible reports whether the navigation bar is visible.
func (h *HomePage) IsNavBarVisible() bool {
	visible, err := h.navBar().IsVisible()
	return err == nil && visible
}

// IsHeroVisible reports whether the hero title is visible.
func (h *HomePage) IsHeroVisible() bool {
	visible, err := h.heroTitle().IsVisible()
	return err == nil && visible
}

// IsSearchVisible reports whether the search toggle is visible.
func (h *HomePage) IsSearchVisible() bool {
	visible, err := h.searchButton().IsVisible()
	return err == nil && visible
}

// NavLinkTexts returns the trimmed texts of all navigation bar links.
func (h *HomePage) NavLinkTexts() ([]string, error) {
	texts, err := h.navBar().Locator("a").AllTextContents()
	if err != nil {
		return nil, err
	}
	return lo.Map(texts, func(text string, _ int) string {
		return strings.TrimSpace(text)
	}), nil
}

// HasLoadedCorrectly reports whether the page looks like the Playwright
// landing page: the title contains "Playwright", the get-started
// call-to-action is visible, and the navigation bar is visible. All three
// must hold.
func (h *HomePage) HasLoadedCorrectly() bool {
	title, err := h.page.Title()
	if err != nil || !strings.Contains(title, "Playwright") {
		return false
	}
	ctaVisible, err := h.getStartedLink().IsVisible()
	if err != nil || !ctaVisible {
		return false
	}
	return h.IsNavBarVisible()
}
