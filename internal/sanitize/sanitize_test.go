package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText_StripsScriptTags(t *testing.T) {
	inputs := []string{
		"<script>alert(1)</script>",
		"Hello <script src=x></script> world",
		"<<script>>",
		"Name<script>",
	}
	for _, in := range inputs {
		out := Text(in)
		assert.NotContains(t, out, "<", "input %q", in)
		assert.NotContains(t, out, ">", "input %q", in)
	}
}

func TestText_RemovesProtocolAndHandlers(t *testing.T) {
	assert.Equal(t, "alert(1)", Text("JavaScript:alert(1)"))
	assert.Equal(t, "img src=x alert(1)", Text("<img src=x onerror=alert(1)>"))
	assert.Equal(t, "click", Text("  onClick=click  "))
}

func TestText_NestedPatternsCollapse(t *testing.T) {
	out := Text("javajavascript:script:alert(1)")
	assert.NotContains(t, strings.ToLower(out), "javascript:")

	out = Text("oonclick=nclick=x")
	assert.NotRegexp(t, `(?i)on\w+=`, out)
}

func TestText_DeeplyNestedProtocol(t *testing.T) {
	for _, depth := range []int{1, 9, 12, 40} {
		in := "javascript:"
		for i := 0; i < depth; i++ {
			in = "java" + in + "script:"
		}
		in += "alert(1)"

		out := Text(in)
		assert.Equal(t, "alert(1)", out, "depth %d", depth)
		assert.Equal(t, out, Text(out), "depth %d", depth)
	}
}

func TestText_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"  padded  ",
		"Ravi Kumar",
		"A-12, MG Road (2nd floor)",
		"<b>bold</b> onload=x javascript:void(0)",
		"ononclick==",
	}
	for _, in := range inputs {
		once := Text(in)
		assert.Equal(t, once, Text(once), "input %q", in)
	}
}

func TestText_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Text(""))
	assert.Equal(t, "", Email(""))
	assert.Equal(t, "", Phone(""))
	assert.Equal(t, "", Address(""))
	assert.Equal(t, "", StrictHTML(""))
}

func TestEmail_LowerCases(t *testing.T) {
	assert.Equal(t, "ravi@example.com", Email("  Ravi@Example.COM "))
	assert.Equal(t, "ravi@example.com", Email("<Ravi@example.com>"))
}

func TestPhone_RestrictsCharacters(t *testing.T) {
	assert.Equal(t, "+91 (98765) 43210", Phone("+91 (98765) 43210"))
	assert.Equal(t, "+91-98765-43210", Phone("+91-98765-43210 ext<script>"))
	assert.Equal(t, "123", Phone("abc123"))
}

func TestAddress_MatchesText(t *testing.T) {
	in := " 12 <b>Main</b> Street onmouseover=x "
	assert.Equal(t, Text(in), Address(in))
}

func TestStrictHTML_RemovesMarkup(t *testing.T) {
	assert.Equal(t, "Hello world", StrictHTML("<p>Hello <b>world</b></p>"))
	assert.Equal(t, "Visa & Passport", StrictHTML("Visa &amp; Passport"))

	out := StrictHTML("&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, out, "<")
	assert.NotContains(t, out, ">")
}
