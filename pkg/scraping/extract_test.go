package scraping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractBasicDocument(t *testing.T) {
	got := ExtractText(`<html><head><title>Fusion Progress</title></head>
		<body><h1>Fusion Progress</h1>
		<p>Net energy gain was demonstrated in 2022.</p>
		<p>Subsequent shots improved the yield.</p>
		</body></html>`)

	assert.Equal(t, "Fusion Progress", got.Title)
	assert.Contains(t, got.Text, "Net energy gain was demonstrated in 2022.")
	assert.Contains(t, got.Text, "Subsequent shots improved the yield.")
}

func TestExtractSkipsChrome(t *testing.T) {
	got := ExtractText(`<body>
		<nav>Home About Contact</nav>
		<header>Site header</header>
		<article><p>Actual content.</p></article>
		<aside>Related links</aside>
		<footer>Copyright footer</footer>
		<script>tracking()</script>
		</body>`)

	assert.Contains(t, got.Text, "Actual content.")
	assert.NotContains(t, got.Text, "Home About Contact")
	assert.NotContains(t, got.Text, "Site header")
	assert.NotContains(t, got.Text, "Related links")
	assert.NotContains(t, got.Text, "Copyright footer")
	assert.NotContains(t, got.Text, "tracking")
}

func TestExtractCollectsLinkText(t *testing.T) {
	got := ExtractText(`<p>See <a href="/a">the first source</a> and <a href="/b">another one</a>.</p>`)

	assert.Contains(t, got.LinkText, "the first source")
	assert.Contains(t, got.LinkText, "another one")
	assert.Contains(t, got.Text, "See")
	assert.Contains(t, got.Text, "the first source")
}

func TestExtractBlockBreaks(t *testing.T) {
	got := ExtractText(`<div><p>First paragraph.</p><p>Second paragraph.</p></div>`)

	assert.Contains(t, got.Text, "First paragraph.\n")
	assert.NotContains(t, got.Text, "First paragraph. Second")
}

func TestExtractPlainTextInput(t *testing.T) {
	got := ExtractText("just   some    plain text\n\n\n\nwith gaps")

	assert.Contains(t, got.Text, "just some plain text")
	assert.Contains(t, got.Text, "with gaps")
	assert.NotContains(t, got.Text, "\n\n\n")
}

func TestCollapseText(t *testing.T) {
	assert.Equal(t, "a b\n\nc", collapseText("  a    b  \n\n\n\n  c  "))
	assert.Equal(t, "", collapseText("   \n\t\n   "))
}
