// Package sanitize provides content transforms for stream.Writer.
package sanitize

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/signadot/jsonstream/stream"
)

// Escape escapes s for use inside a JSON string: quotes, backslashes
// and control characters.
func Escape(s string) string {
	return escape(s, false)
}

// EscapeHTML is Escape that also escapes <, > and &, so output can be
// embedded in HTML.
func EscapeHTML(s string) string {
	return escape(s, true)
}

func escape(s string, html bool) string {
	if !needsEscape(s, html) {
		return s
	}
	js := jsoniter.ConfigFastest.BorrowStream(nil)
	defer jsoniter.ConfigFastest.ReturnStream(js)
	if html {
		js.WriteStringWithHTMLEscaped(s)
	} else {
		js.WriteString(s)
	}
	b := js.Buffer()
	// strip the quotes added by the stream
	return string(b[1 : len(b)-1])
}

func needsEscape(s string, html bool) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c < 0x20, c == '"', c == '\\', c >= 0x80:
			return true
		case html && (c == '<' || c == '>' || c == '&'):
			return true
		}
	}
	return false
}

// Redact returns a transform replacing every occurrence of a secret
// with [S256:<hash>], the hash being a salted SHA-256 prefix. Empty
// secrets are ignored.
func Redact(secrets []string, salt string) stream.Transform {
	var pairs []string
	for _, s := range secrets {
		if s == "" {
			continue
		}
		pairs = append(pairs, s, hashToken(s, salt))
	}
	if len(pairs) == 0 {
		return func(s string) string { return s }
	}
	r := strings.NewReplacer(pairs...)
	return r.Replace
}

func hashToken(secret, salt string) string {
	sum := sha256.Sum256([]byte(salt + secret))
	return "[S256:" + hex.EncodeToString(sum[:8]) + "]"
}

// Chain applies transforms from left to right. Nil entries are skipped.
func Chain(ts ...stream.Transform) stream.Transform {
	var chain []stream.Transform
	for _, t := range ts {
		if t != nil {
			chain = append(chain, t)
		}
	}
	return func(s string) string {
		for _, t := range chain {
			s = t(s)
		}
		return s
	}
}
