package endpoints

import (
	"net/url"
	"strconv"
	"strings"
)

// Query collects optional request parameters in insertion order. Nil
// values are skipped, so callers add every known parameter
// unconditionally and absent ones never reach the wire.
type Query struct {
	pairs []pair
}

type pair struct {
	key string
	val string
}

func (q *Query) add(key, val string) {
	q.pairs = append(q.pairs, pair{key: key, val: val})
}

func (q *Query) Str(key string, v *string) {
	if v == nil {
		return
	}
	q.add(key, escape(*v))
}

func (q *Query) Int(key string, v *int) {
	if v == nil {
		return
	}
	q.add(key, strconv.Itoa(*v))
}

func (q *Query) Float(key string, v *float64) {
	if v == nil {
		return
	}
	q.add(key, escape(strconv.FormatFloat(*v, 'f', -1, 64)))
}

func (q *Query) Bool(key string, v *bool) {
	if v == nil {
		return
	}
	q.add(key, strconv.FormatBool(*v))
}

// List encodes vs as one comma-joined value. Elements are escaped
// individually, the separating commas are not.
func (q *Query) List(key string, vs []string) {
	if vs == nil {
		return
	}
	enc := make([]string, len(vs))
	for i, v := range vs {
		enc[i] = escape(v)
	}
	q.add(key, strings.Join(enc, ","))
}

func (q *Query) Encode() string {
	if q == nil || len(q.pairs) == 0 {
		return ""
	}

	var b strings.Builder
	for i, p := range q.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escape(p.key))
		b.WriteByte('=')
		b.WriteString(p.val)
	}
	return b.String()
}

// escape percent-encodes one query component, with %20 for spaces
// rather than '+'.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
