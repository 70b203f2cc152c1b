package urlutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.UnixMilli(1700000000000)

func TestWithCacheBuster(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare URL gains the parameter",
			in:   "https://docs.example.com/page",
			want: "https://docs.example.com/page?force_reload=1700000000000",
		},
		{
			name: "fragment is preserved",
			in:   "https://docs.example.com/page#section",
			want: "https://docs.example.com/page?force_reload=1700000000000#section",
		},
		{
			name: "existing query parameters survive",
			in:   "https://docs.example.com/page?q=1",
			want: "https://docs.example.com/page?force_reload=1700000000000&q=1",
		},
		{
			name: "a previous buster is replaced, not duplicated",
			in:   "https://docs.example.com/page?force_reload=1",
			want: "https://docs.example.com/page?force_reload=1700000000000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WithCacheBuster(tt.in, fixedTime)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithTextFragment(t *testing.T) {
	t.Run("appends the directive to a fragment-free URL", func(t *testing.T) {
		got, err := WithTextFragment("https://host.example/article", "Deep dive")
		require.NoError(t, err)
		assert.Equal(t, "https://host.example/article#:~:text=Deep%20dive", got)
	})

	t.Run("an existing fragment wins", func(t *testing.T) {
		got, err := WithTextFragment("https://host.example/article#intro", "Deep dive")
		require.NoError(t, err)
		assert.Equal(t, "https://host.example/article#intro", got)
	})

	t.Run("empty text leaves the URL alone", func(t *testing.T) {
		got, err := WithTextFragment("https://host.example/article", "  ")
		require.NoError(t, err)
		assert.Equal(t, "https://host.example/article", got)
	})

	t.Run("reserved characters are percent-encoded", func(t *testing.T) {
		got, err := WithTextFragment("https://host.example/a", "a&b=c")
		require.NoError(t, err)
		assert.Equal(t, "https://host.example/a#:~:text=a%26b%3Dc", got)
	})
}

func TestStripCacheBuster(t *testing.T) {
	got, err := StripCacheBuster("https://docs.example.com/page?force_reload=1700000000000#section")
	require.NoError(t, err)
	assert.Equal(t, "https://docs.example.com/page#section", got)

	got, err = StripCacheBuster("https://docs.example.com/page?a=1&force_reload=2")
	require.NoError(t, err)
	assert.Equal(t, "https://docs.example.com/page?a=1", got)
}

func TestRoundTrip(t *testing.T) {
	// A pane URL differs from the anchor href only by the buster.
	busted, err := WithCacheBuster("https://docs.example.com/page#section", fixedTime)
	require.NoError(t, err)
	stripped, err := StripCacheBuster(busted)
	require.NoError(t, err)
	assert.Equal(t, "https://docs.example.com/page#section", stripped)
}
