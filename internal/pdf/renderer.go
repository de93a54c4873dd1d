package pdf

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// ErrRendererNotReady marks failures to obtain a working headless browser.
// Callers map it to a distinct error code so clients can tell an
// environment problem apart from a bad document.
var ErrRendererNotReady = errors.New("pdf renderer not ready")

// Paper describes the physical page handed to Chromium, in inches.
type Paper struct {
	WidthIn   float64
	HeightIn  float64
	Landscape bool
}

// A4Portrait is the resume page format.
var A4Portrait = Paper{WidthIn: 8.27, HeightIn: 11.69}

// CardLandscape is the US business card format.
var CardLandscape = Paper{WidthIn: 3.5, HeightIn: 2, Landscape: true}

// RenderHTML renders htmlContent in a headless browser and returns the
// resulting PDF bytes at the requested paper size.
func RenderHTML(htmlContent string, paper Paper) ([]byte, error) {
	launch := launcher.New().
		Headless(true).
		NoSandbox(true)

	if path, ok := launcher.LookPath(); ok {
		launch = launch.Bin(path)
	}

	browserURL, err := launch.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: launch chromium: %v", ErrRendererNotReady, err)
	}
	defer launch.Cleanup()

	browser := rod.New().ControlURL(browserURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("%w: connect browser: %v", ErrRendererNotReady, err)
	}
	defer func() {
		_ = browser.Close()
	}()

	page, err := browser.Timeout(30 * time.Second).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("%w: create page: %v", ErrRendererNotReady, err)
	}
	defer func() {
		_ = page.Close()
	}()

	page = page.Timeout(30 * time.Second)
	if err := page.SetDocumentContent(htmlContent); err != nil {
		return nil, fmt.Errorf("set document content: %w", err)
	}

	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load: %w", err)
	}

	width := paper.WidthIn
	height := paper.HeightIn
	reader, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
		Landscape:       paper.Landscape,
		PaperWidth:      &width,
		PaperHeight:     &height,
	})
	if err != nil {
		return nil, fmt.Errorf("export pdf: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read pdf bytes: %w", err)
	}

	return data, nil
}
