package webtest

import "github.com/playwright-community/playwright-go"

// Timeout constants for browser interactions, in milliseconds. Tests should
// use these rather than introducing larger ad-hoc values.
const (
	// DefaultTimeoutMs is the timeout for element waits and actions.
	DefaultTimeoutMs = 5000
	// NavigationTimeoutMs is the timeout for page navigations.
	NavigationTimeoutMs = 10000
	// ShortTimeoutMs is for checks that are expected to resolve quickly.
	ShortTimeoutMs = 1000
)

const (
	// ScreenshotRoot is where CaptureScreenshot writes its date-stamped
	// subdirectories.
	ScreenshotRoot = "screenshots"
	// VideoDir is where contexts created with DefaultContextOptions record
	// videos.
	VideoDir = "videos"
)

// CILaunchOptions returns launch options for containerized CI runs: headless
// with the OS sandbox disabled, since CI containers typically lack the
// kernel features Chromium's sandbox requires.
func CILaunchOptions() playwright.BrowserTypeLaunchOptions {
	return playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
		Args: []string{
			"--no-sandbox",
			"--disable-setuid-sandbox",
			"--disable-dev-shm-usage",
		},
	}
}

// DebugLaunchOptions returns launch options for local debugging: a visible
// browser window with devtools open and a 100ms delay between actions so a
// human can follow along.
func DebugLaunchOptions() playwright.BrowserTypeLaunchOptions {
	return playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(false),
		SlowMo:   playwright.Float(100),
		Devtools: playwright.Bool(true),
	}
}

// DefaultContextOptions returns context options with a fixed desktop
// viewport, TLS certificate errors ignored (test servers use self-signed
// certificates), and video recording enabled under VideoDir.
func DefaultContextOptions() playwright.BrowserNewContextOptions {
	return playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  1920,
			Height: 1080,
		},
		IgnoreHttpsErrors: playwright.Bool(true),
		RecordVideo: &playwright.RecordVideo{
			Dir: VideoDir,
			Size: &playwright.Size{
				Width:  1280,
				Height: 720,
			},
		},
	}
}
