package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobPageHTML = `<html>
<head><title>Job</title><script>var x = 1;</script></head>
<body>
<nav>Home | Jobs | About</nav>
<div class="job-description">
  <h1>Operations Manager</h1>
  <p>Own the budget and forecasting.</p>
</div>
<footer>Copyright</footer>
</body>
</html>`

func TestExtractMainText_UsesContentSelector(t *testing.T) {
	text, err := ExtractMainText(jobPageHTML, JobPostingSelectors())

	require.NoError(t, err)
	assert.Contains(t, text, "Operations Manager")
	assert.Contains(t, text, "Own the budget and forecasting.")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "var x")
}

func TestExtractMainText_BodyFallback(t *testing.T) {
	html := `<html><body><p>Plain posting text.</p></body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())

	require.NoError(t, err)
	assert.Equal(t, "Plain posting text.", text)
}

func TestExtractMainText_RemovesNoiseBeforeSelection(t *testing.T) {
	html := `<html><body><main><div class="sidebar">Ads here</div><p>Role details.</p></main></body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())

	require.NoError(t, err)
	assert.Contains(t, text, "Role details.")
	assert.NotContains(t, text, "Ads here")
}

func TestURL_FetchesAndReportsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(jobPageHTML))
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Operations Manager")
}

func TestURL_NonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)

	require.Error(t, err)
	var ferr *Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-url", nil)

	require.Error(t, err)
	var ferr *Error
	assert.ErrorAs(t, err, &ferr)
}

func TestShouldUseBrowser_ShortContent(t *testing.T) {
	assert.True(t, ShouldUseBrowser("tiny"))
	long := make([]byte, MinContentLength+1)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ShouldUseBrowser(string(long)))
}

func TestCleanWhitespace(t *testing.T) {
	in := "  line one  \n\n\n   line two\t\n"
	assert.Equal(t, "line one\nline two", cleanWhitespace(in))
}
