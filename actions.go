package webtest

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// WaitForVisible polls until the first element matched by selector is
// visible, returning true on success. Any failure, including a timeout or an
// invalid selector, is collapsed to false; callers cannot distinguish the
// two. Pass timeoutMs <= 0 to use DefaultTimeoutMs.
func WaitForVisible(page playwright.Page, selector string, timeoutMs float64) bool {
	if timeoutMs <= 0 {
		timeoutMs = DefaultTimeoutMs
	}
	err := page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(timeoutMs),
	})
	return err == nil
}

// ScrollIntoView smoothly scrolls the first element matched by selector into
// view, then sleeps a fixed 500ms so the scroll animation can settle. The
// delay is a heuristic, not a guarantee.
func ScrollIntoView(page playwright.Page, selector string) error {
	_, err := page.Evaluate(`selector => {
		const el = document.querySelector(selector);
		if (!el) {
			throw new Error('no element matches ' + selector);
		}
		el.scrollIntoView({ behavior: 'smooth', block: 'center' });
	}`, selector)
	if err != nil {
		return fmt.Errorf("scroll %q into view: %w", selector, err)
	}
	time.Sleep(500 * time.Millisecond)
	return nil
}

// ClearAndFill empties the field and then fills it with value, as two
// discrete operations. An observer can see the intermediate empty state.
func ClearAndFill(field playwright.Locator, value string) error {
	if err := field.Fill(""); err != nil {
		return fmt.Errorf("clear field: %w", err)
	}
	if err := field.Fill(value); err != nil {
		return fmt.Errorf("fill field: %w", err)
	}
	return nil
}
