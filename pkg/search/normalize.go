package search

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// Tracking parameters stripped during URL normalization. Two URLs that
// differ only in these are the same page.
var trackingParams = regexp.MustCompile(
	`^(?i)(utm_\w+|fbclid|gclid|gclsrc|dclid|msclkid|mc_[ce]id|` +
		`ref|ref_src|igshid|affiliate|campaign_id|ad_id|zanpid|_ga|_gid|_gl|` +
		`yclid|_openstat|wbraid|gbraid)$`)

// NormalizeURL canonicalizes a URL for deduplication: lowercases the scheme
// and host, strips the fragment and any trailing slash, drops tracking query
// parameters, and sorts what remains. Unparseable input is returned as-is so
// dedup degrades to exact-string comparison instead of dropping the result.
func NormalizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	if p := strings.TrimRight(u.Path, "/"); p != "" {
		u.Path = p
	} else {
		u.Path = "/"
	}

	if u.RawQuery != "" {
		values, err := url.ParseQuery(u.RawQuery)
		if err != nil {
			u.RawQuery = ""
		} else {
			keys := make([]string, 0, len(values))
			for k := range values {
				if trackingParams.MatchString(k) {
					continue
				}
				keys = append(keys, k)
			}
			sort.Strings(keys)

			var b strings.Builder
			for _, k := range keys {
				for _, v := range values[k] {
					if b.Len() > 0 {
						b.WriteByte('&')
					}
					b.WriteString(url.QueryEscape(k))
					b.WriteByte('=')
					b.WriteString(url.QueryEscape(v))
				}
			}
			u.RawQuery = b.String()
		}
	}

	return u.String()
}

// Dedup removes in-batch duplicates by normalized URL, preserving first
// occurrence order.
func Dedup(items []Item) []Item {
	seen := make(map[string]struct{}, len(items))
	out := make([]Item, 0, len(items))
	for _, item := range items {
		key := NormalizeURL(item.URL)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
