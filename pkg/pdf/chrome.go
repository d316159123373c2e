package pdf

import (
	"context"
	"encoding/base64"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Renderer rasterizes an HTML document into PDF bytes.
type Renderer interface {
	RenderHTML(ctx context.Context, html string) ([]byte, error)
}

// ChromeRenderer prints through a headless Chrome instance. A fresh browser
// process is launched per call and torn down on every return path.
type ChromeRenderer struct {
	Timeout time.Duration
}

func NewChromeRenderer() *ChromeRenderer {
	return &ChromeRenderer{Timeout: 30 * time.Second}
}

func (r *ChromeRenderer) RenderHTML(ctx context.Context, html string) ([]byte, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := chromedp.DefaultExecAllocatorOptions[:]
	if path := os.Getenv("CHROME_PATH"); path != "" {
		opts = append(opts, chromedp.ExecPath(path))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	url := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	var buf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			buf = data
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return buf, nil
}
