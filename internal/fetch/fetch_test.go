package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/time/rate"
)

func TestURL(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/ok":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>hello</body></html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	t.Run("success", func(t *testing.T) {
		result, err := URL(context.Background(), srv.URL+"/ok", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, result.StatusCode)
		assert.Contains(t, result.HTML, "hello")
		assert.Equal(t, "text/html", result.ContentType)
		assert.Equal(t, DefaultUserAgent, gotAgent)
	})

	t.Run("non-200 returns result and error", func(t *testing.T) {
		result, err := URL(context.Background(), srv.URL+"/missing", nil)
		require.Error(t, err)
		require.NotNil(t, result)
		assert.Equal(t, http.StatusNotFound, result.StatusCode)
		assert.Contains(t, err.Error(), "HTTP status 404")
	})

	t.Run("invalid scheme", func(t *testing.T) {
		_, err := URL(context.Background(), "ftp://example.com/job", nil)
		var fetchErr *Error
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, "invalid URL", fetchErr.Message)
	})

	t.Run("body is capped", func(t *testing.T) {
		opts := DefaultOptions()
		opts.MaxBodyBytes = 10
		result, err := URL(context.Background(), srv.URL+"/ok", opts)
		require.NoError(t, err)
		assert.Len(t, result.HTML, 10)
	})
}

func TestURL_LimiterHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	opts := DefaultOptions()
	opts.Limiter = rate.NewLimiter(rate.Limit(0.001), 1)

	_, err := URL(context.Background(), srv.URL, opts)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = URL(ctx, srv.URL, opts)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "rate limiter wait failed", fetchErr.Message)
}

func TestURL_LogsFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	core, logs := observer.New(zap.DebugLevel)
	opts := DefaultOptions()
	opts.Logger = zap.New(core)

	_, err := URL(context.Background(), srv.URL, opts)
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessage("fetched url").Len())
	assert.Equal(t, int64(200), logs.All()[0].ContextMap()["status"])
}

func TestExtractMainText(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs</nav>
		<div class="job-description">
			<h2>Requirements</h2>
			<ul><li>5+ years of Python</li><li>Experience with   AWS</li></ul>
			<p>We value communication.</p>
			<form id="application-form">Apply now</form>
		</div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors(), PlatformNoiseSelectors(PlatformUnknown)...)
	require.NoError(t, err)

	lines := strings.Split(text, "\n")
	assert.Equal(t, []string{
		"Requirements",
		"- 5+ years of Python",
		"- Experience with AWS",
		"We value communication.",
	}, lines)
	assert.NotContains(t, text, "Home")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "Apply now")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	text, err := ExtractMainText("<html><body><p>Plain posting</p></body></html>", []string{".nope"})
	require.NoError(t, err)
	assert.Equal(t, "Plain posting", text)
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://job-boards.greenhouse.io/doordashusa/jobs/7063751", PlatformGreenhouse},
		{"https://boards.greenhouse.io/company/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/company/job-id", PlatformLever},
		{"https://company.wd5.myworkdayjobs.com/en-US/External", PlatformWorkday},
		{"https://jobs.ashbyhq.com/acme/123", PlatformAshby},
		{"https://notgreenhouse.io.example.com/jobs", PlatformUnknown},
		{"https://example.com/careers", PlatformUnknown},
		{"::not a url", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestPlatformSelectors(t *testing.T) {
	assert.Equal(t, JobPostingSelectors(), PlatformContentSelectors(PlatformUnknown))
	assert.Contains(t, PlatformContentSelectors(PlatformGreenhouse), ".job__description")
	assert.Contains(t, PlatformNoiseSelectors(PlatformLever), ".posting-apply")
	assert.Contains(t, PlatformNoiseSelectors(PlatformUnknown), "form")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("   short   "))
	assert.False(t, ShouldUseBrowser(strings.Repeat("x", MinContentLength)))
}

func TestJobFetcher_Fetch(t *testing.T) {
	longPosting := "<div class='job-description'><p>" + strings.Repeat("Build Go services. ", 40) + "</p></div>"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/long":
			_, _ = w.Write([]byte("<html><body>" + longPosting + "</body></html>"))
		case "/short":
			_, _ = w.Write([]byte("<html><body><div id='root'>Loading</div></body></html>"))
		}
	}))
	defer srv.Close()

	t.Run("http text is enough", func(t *testing.T) {
		rendered := false
		f := &JobFetcher{Render: func(context.Context, string) (string, error) {
			rendered = true
			return "", nil
		}}
		page, err := f.Fetch(context.Background(), srv.URL+"/long")
		require.NoError(t, err)
		assert.False(t, rendered)
		assert.False(t, page.Rendered)
		assert.Contains(t, page.Text, "Build Go services.")
	})

	t.Run("short page falls back to renderer", func(t *testing.T) {
		f := &JobFetcher{Render: func(context.Context, string) (string, error) {
			return "<html><body>" + longPosting + "</body></html>", nil
		}}
		page, err := f.Fetch(context.Background(), srv.URL+"/short")
		require.NoError(t, err)
		assert.True(t, page.Rendered)
		assert.Contains(t, page.Text, "Build Go services.")
	})

	t.Run("renderer failure keeps http text", func(t *testing.T) {
		f := &JobFetcher{Render: func(context.Context, string) (string, error) {
			return "", errors.New("no chrome")
		}}
		page, err := f.Fetch(context.Background(), srv.URL+"/short")
		require.NoError(t, err)
		assert.False(t, page.Rendered)
		assert.Equal(t, "Loading", page.Text)
	})
}
