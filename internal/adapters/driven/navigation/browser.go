package navigation

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"sort"
	"strings"

	"github.com/custodia-labs/lookup/internal/core/domain"
	"github.com/custodia-labs/lookup/internal/core/ports/driven"
	"github.com/custodia-labs/lookup/internal/logger"
)

// Ensure Browser implements the interface.
var _ driven.Navigator = (*Browser)(nil)

// Browser opens new-record pages of a web application in the system browser.
// URLs take the form {base}/lightning/o/{object}/{action}?defaultFieldValues=K=V,...
type Browser struct {
	base *url.URL
	open func(ctx context.Context, target string) error
}

// NewBrowser creates a browser navigator for the application at baseURL.
func NewBrowser(baseURL string) (*Browser, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: navigation base url %q", domain.ErrInvalidInput, baseURL)
	}
	return &Browser{base: u, open: openURL}, nil
}

// Navigate opens the URL for page.
func (b *Browser) Navigate(ctx context.Context, page domain.PageReference) error {
	if page.Type != domain.PageTypeObjectPage {
		return fmt.Errorf("%w: page type %q", domain.ErrUnsupportedType, page.Type)
	}
	target := b.URL(page)
	logger.Info("opening %s", target)
	return b.open(ctx, target)
}

// URL builds the address for page.
func (b *Browser) URL(page domain.PageReference) string {
	action := page.Attributes.ActionName
	if action == "" {
		action = domain.ActionNew
	}
	u := *b.base
	u.Path = b.base.Path + "/lightning/o/" + url.PathEscape(page.Attributes.ObjectAPIName) + "/" + url.PathEscape(action)

	if len(page.State.DefaultFieldValues) > 0 {
		keys := make([]string, 0, len(page.State.DefaultFieldValues))
		for k := range page.State.DefaultFieldValues {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, k+"="+page.State.DefaultFieldValues[k])
		}
		u.RawQuery = url.Values{"defaultFieldValues": {strings.Join(pairs, ",")}}.Encode()
	}
	return u.String()
}

// openURL opens a URL in the default browser.
func openURL(ctx context.Context, target string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", target)
	case "linux":
		cmd = exec.CommandContext(ctx, "xdg-open", target)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", target)
	default:
		return fmt.Errorf("%w: no browser opener for %s", domain.ErrNavigationUnavailable, runtime.GOOS)
	}

	return cmd.Start()
}
