package validate

import (
	"net/url"
	"strings"
)

// ValidateURL checks that raw is a well-formed http(s) URL. A plain-http URL
// passes with an insecure-scheme warning. When allowedDomains is non-empty the
// URL's host must equal one of the domains or be a subdomain of one;
// comparison is case-insensitive.
func ValidateURL(raw string, allowedDomains []string) Result {
	var res Result

	if strings.TrimSpace(raw) == "" {
		res.AddError("URL is empty")
		return res
	}

	u, err := url.Parse(raw)
	if err != nil {
		res.AddError("URL %q is not parseable: %v", raw, err)
		return res
	}

	switch u.Scheme {
	case "https":
	case "http":
		res.AddWarning("URL %q uses insecure http", raw)
	default:
		res.AddError("URL %q has unsupported scheme %q, expected http or https", raw, u.Scheme)
		return res
	}

	if len(allowedDomains) > 0 && !hostAllowed(u.Hostname(), allowedDomains) {
		res.AddError("URL %q host %q is not in the allowed domains %v", raw, u.Hostname(), allowedDomains)
	}

	return res
}

// hostAllowed matches host against a domain list: exact match or suffix match
// on ".<domain>" so subdomains pass.
func hostAllowed(host string, domains []string) bool {
	host = strings.ToLower(host)
	for _, d := range domains {
		d = strings.ToLower(d)
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}
