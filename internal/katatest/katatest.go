// Package katatest serves fake training pages for browser integration tests.
package katatest

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
)

// Page describes a fake training page.
type Page struct {
	Level       string
	Name        string
	Description string
	InitialCode string
	TestCode    string

	// OverlayMillis hides the loading overlay after this many milliseconds.
	// Negative keeps it visible forever.
	OverlayMillis int

	// NoFixture omits the test code editor.
	NoFixture bool
}

// HTML renders the page. Editor buffers are attached through a fake
// CodeMirror object so they are only reachable from script.
func (p Page) HTML() string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head><title>Codewars</title>
<style>.hidden { display: none; }</style>
</head>
<body>
<div id="overlay" class="fixed inset-0 w-full h-screen z-50 overflow-hidden" style="position:fixed;top:0;left:0;width:100%;height:100%;">Loading...</div>
<div class="inner-small-hex"><span>` + p.Level + `</span></div>
<h4>` + p.Name + `</h4>
<div id="description" class="hidden"><p>` + p.Description + `</p></div>
<div id="code"><div class="CodeMirror"></div></div>
`)
	if !p.NoFixture {
		b.WriteString(`<div id="fixture"><div class="CodeMirror"></div></div>
`)
	}
	b.WriteString(`<script>
function attach(sel, value) {
  const el = document.querySelector(sel);
  if (el) el.CodeMirror = { getValue: function() { return value; } };
}
attach('#code .CodeMirror', ` + jsString(p.InitialCode) + `);
attach('#fixture .CodeMirror', ` + jsString(p.TestCode) + `);
`)
	if p.OverlayMillis >= 0 {
		b.WriteString(`setTimeout(function() {
  document.getElementById('overlay').style.display = 'none';
  document.getElementById('description').classList.remove('hidden');
}, ` + strconv.Itoa(p.OverlayMillis) + `);
`)
	}
	b.WriteString(`</script>
</body>
</html>`)
	return b.String()
}

// NewServer serves the page at /kata/abc123/train/python and returns the
// training URL.
func NewServer(t *testing.T, p Page) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(p.HTML()))
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/kata/abc123/train/python"
}

func jsString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "<", `\x3c`)
	return "'" + r.Replace(s) + "'"
}
