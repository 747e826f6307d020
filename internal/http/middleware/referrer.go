package middleware

import (
	"log/slog"
	"net"
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v2"

	"refsource/pkg/referrer"
)

// ClassifierKey is the locals key holding the request's *referrer.Classifier.
const ClassifierKey = "referrer_classifier"

// requestProvider reads the referrer and site domain from the active request.
type requestProvider struct {
	c      *fiber.Ctx
	domain string
}

func (p *requestProvider) RawReferrer() (string, bool) {
	raw := cleanHeader(p.c.Get(fiber.HeaderReferer))
	return raw, raw != ""
}

func (p *requestProvider) CurrentDomain() string {
	if p.domain != "" {
		return p.domain
	}
	return stripPort(p.c.Hostname())
}

// cleanHeader drops control characters and surrounding whitespace.
// The returned string is copied out of the request buffer.
func cleanHeader(value string) string {
	value = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, value)
	return strings.Clone(strings.TrimSpace(value))
}

func stripPort(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

// ReferrerContext stores a classifier bound to the current request in locals.
// domain is the site's own host; when empty the request host is used.
func ReferrerContext(engine *referrer.Engine, domain string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(ClassifierKey, referrer.NewClassifier(engine, &requestProvider{c: c, domain: domain}))
		return c.Next()
	}
}

// Classifier returns the request's classifier. Without ReferrerContext a
// classifier over the built-in tables and the request host is returned.
func Classifier(c *fiber.Ctx) *referrer.Classifier {
	if cl, ok := c.Locals(ClassifierKey).(*referrer.Classifier); ok {
		return cl
	}
	return referrer.NewClassifier(nil, &requestProvider{c: c})
}

// SameSiteReferrer rejects state-changing requests whose referrer points at
// another site. Requests without a referrer pass.
func SameSiteReferrer(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}

		cl := Classifier(c)
		if cl.IsExternal("") {
			logger.Warn("Rejected request with external referrer",
				slog.String("method", c.Method()),
				slog.String("path", c.Path()),
				slog.String("referrer", cl.ReferrerURL()),
				slog.String("domain", cl.CurrentDomain()))
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Request referrer does not match this site",
				"code":  "EXTERNAL_REFERRER",
			})
		}

		return c.Next()
	}
}
