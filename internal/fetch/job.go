// Package fetch - job.go provides the high-level job posting fetch flow.
package fetch

import (
	"context"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// JobPosting fetches a job posting URL and returns its text content,
// truncated to the analyzer's job text limit. Platform-specific selectors
// strip application forms and legal boilerplate; if the static HTML yields
// too little text and opts.UseBrowser is set, the page is re-rendered in a
// headless browser before giving up.
func JobPosting(ctx context.Context, urlStr string, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	result, err := URL(ctx, urlStr, opts)
	if err != nil {
		return "", err
	}

	platform := DetectPlatform(urlStr)
	text, err := ExtractMainText(result.HTML,
		PlatformContentSelectors(platform),
		PlatformNoiseSelectors(platform)...)
	if err != nil {
		return "", err
	}

	if ShouldUseBrowser(text) && opts.UseBrowser {
		html, browserErr := WithBrowser(ctx, urlStr, opts.Timeout, opts.Verbose)
		if browserErr != nil {
			// Keep whatever the static fetch produced.
			return truncateJobText(text), nil
		}
		rendered, renderErr := ExtractMainText(html,
			PlatformContentSelectors(platform),
			PlatformNoiseSelectors(platform)...)
		if renderErr == nil && len(rendered) > len(text) {
			text = rendered
		}
	}

	return truncateJobText(text), nil
}

// truncateJobText caps posting text at the analyzer's input limit.
func truncateJobText(text string) string {
	if len(text) > types.MaxJobTextLength {
		return text[:types.MaxJobTextLength]
	}
	return text
}
