package document

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/siamsupply/shop-api/internal/config"
	"go.uber.org/zap"
)

// A4 paper size in inches
const (
	a4Width  = 8.27
	a4Height = 11.69
)

// PDFRenderer turns an HTML document into PDF bytes
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html []byte) ([]byte, error)
}

// ChromePDFRenderer prints HTML with a headless Chrome. Each call starts its own
// browser and tears it down before returning.
type ChromePDFRenderer struct {
	bin       string
	noSandbox bool
	timeout   time.Duration
	logger    *zap.Logger
}

// NewChromePDFRenderer creates a renderer from the PDF configuration
func NewChromePDFRenderer(cfg *config.PDFConfig, logger *zap.Logger) *ChromePDFRenderer {
	timeout := cfg.TimeoutDuration()
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChromePDFRenderer{
		bin:       cfg.ChromeBin,
		noSandbox: cfg.NoSandbox,
		timeout:   timeout,
		logger:    logger,
	}
}

// chromeProcess is the part of the launcher used for teardown
type chromeProcess interface {
	Kill()
	Cleanup()
}

// shutdown closes the browser, then removes its profile directory. Cleanup
// blocks until Chrome exits, so the process is killed first whenever the
// browser was never connected or did not close.
func shutdown(proc chromeProcess, closeBrowser func() error, logger *zap.Logger) {
	if closeBrowser == nil {
		proc.Kill()
	} else if err := closeBrowser(); err != nil {
		logger.Debug("failed to close browser, killing it", zap.Error(err))
		proc.Kill()
	}
	proc.Cleanup()
}

// RenderPDF launches a browser, loads the document and prints it on A4 with backgrounds
func (r *ChromePDFRenderer) RenderPDF(ctx context.Context, html []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()

	l := launcher.New().Headless(true).NoSandbox(r.noSandbox).Context(ctx)
	if r.bin != "" {
		l = l.Bin(r.bin)
	}
	var browser *rod.Browser
	defer func() {
		var closeBrowser func() error
		if browser != nil {
			closeBrowser = browser.Close
		}
		shutdown(l, closeBrowser, r.logger)
	}()

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	b := rod.New().ControlURL(controlURL).Context(ctx)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}
	browser = b

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	if err := page.SetDocumentContent(string(html)); err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("failed waiting for document: %w", err)
	}

	width, height := a4Width, a4Height
	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PaperWidth:        &width,
		PaperHeight:       &height,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to print pdf: %w", err)
	}

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf stream: %w", err)
	}

	r.logger.Debug("rendered pdf",
		zap.Int("bytes", len(data)),
		zap.Duration("duration", time.Since(start)),
	)
	return data, nil
}
