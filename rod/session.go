package rod

import (
	"context"
	"fmt"

	"github.com/fwojciec/katadl"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Session owns a headless Chrome process for the duration of one render.
type Session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	closed   bool
}

// NewSession launches a headless Chrome browser and connects to it.
// Close must be called when the Session is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewSession() (*Session, error) {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Session{browser: browser, launcher: lnchr}, nil
}

// Page opens a blank tab bound to ctx.
func (s *Session) Page(ctx context.Context) (*rod.Page, error) {
	if s.closed {
		return nil, katadl.Errorf(katadl.EINVALID, "browser session closed")
	}

	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	return page.Context(ctx), nil
}

// Close shuts down the browser and kills the launcher process.
// Close is safe to call multiple times.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var err error
	if s.browser != nil {
		err = s.browser.Close()
		s.browser = nil
	}
	if s.launcher != nil {
		s.launcher.Kill()
		s.launcher = nil
	}
	return err
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (s *Session) LauncherPID() int {
	if s.launcher == nil {
		return 0
	}
	return s.launcher.PID()
}
