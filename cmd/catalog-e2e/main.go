// Command catalog-e2e drives a headless browser against the catalog
// front-end and fails when the expected product is not rendered.
package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	frontURL = flag.String("url", "http://localhost:3000", "front-end url")
	expected = flag.String("text", "Bala", "text expected inside a list item")
	wait     = flag.Duration("wait", 2*time.Second, "how long to wait for the element")
	headless = flag.Bool("headless", true, "run the browser without a window")
)

func main() {
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	zap.ReplaceGlobals(logger)
	defer func() { _ = logger.Sync() }()

	if err := run(context.Background(), *frontURL, *expected, *wait, *headless); err != nil {
		zap.L().Error("smoke check failed", zap.String("url", *frontURL), zap.String("text", *expected), zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	zap.L().Info("smoke check passed", zap.String("url", *frontURL), zap.String("text", *expected))
}

func run(ctx context.Context, url, text string, wait time.Duration, headless bool) error {
	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.Flag("headless", headless))
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	if err := chromedp.Run(browserCtx, chromedp.Navigate(url)); err != nil {
		return errors.Wrapf(err, "navigate to %s", url)
	}

	waitCtx, cancelWait := context.WithTimeout(browserCtx, wait)
	defer cancelWait()
	if err := chromedp.Run(waitCtx, chromedp.WaitVisible(listItemXPath(text), chromedp.BySearch)); err != nil {
		return errors.Wrapf(err, "no list item containing %q", text)
	}
	return nil
}

// listItemXPath matches an li whose text contains text.
func listItemXPath(text string) string {
	return `//li[contains(text(), ` + xpathLiteral(text) + `)]`
}

// xpathLiteral quotes s as an XPath 1.0 string. XPath has no escape
// sequences, so text holding both quote kinds is split around the double
// quotes and rebuilt with concat().
func xpathLiteral(s string) string {
	switch {
	case !strings.Contains(s, `"`):
		return `"` + s + `"`
	case !strings.Contains(s, `'`):
		return `'` + s + `'`
	}
	parts := strings.Split(s, `"`)
	args := make([]string, 0, 2*len(parts)-1)
	for i, part := range parts {
		if i > 0 {
			args = append(args, `'"'`)
		}
		if part != "" {
			args = append(args, `"`+part+`"`)
		}
	}
	return "concat(" + strings.Join(args, ", ") + ")"
}
