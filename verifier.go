package checkmx

import (
	"context"
	"net"
	"time"

	"github.com/drahoslavzan/checkmx/internal/logger"
)

// defaultTimeout bounds a single MX lookup
const defaultTimeout = 5 * time.Second

// Verifier checks email addresses for a domain with MX records
type Verifier struct {
	mxResolver     Resolver
	timeout        time.Duration
	suggestEnabled bool
}

// Result is the outcome of checking one email address
type Result struct {
	Email  string `json:"email"`  // the address as it was given
	Status string `json:"status"` // one of the Status* values, possibly with an error message
}

// NewVerifier creates a new Verifier using the Go resolver
func NewVerifier() *Verifier {
	return &Verifier{
		mxResolver:     net.DefaultResolver,
		timeout:        defaultTimeout,
		suggestEnabled: true,
	}
}

// Resolver sets the resolver MX records are looked up with
func (v *Verifier) Resolver(r Resolver) *Verifier {
	v.mxResolver = r
	return v
}

// Timeout bounds every MX lookup, zero leaves it to the resolver
func (v *Verifier) Timeout(d time.Duration) *Verifier {
	v.timeout = d
	return v
}

// EnableDomainSuggest logs a likely intended domain when a domain does not exist
func (v *Verifier) EnableDomainSuggest() *Verifier {
	v.suggestEnabled = true
	return v
}

// DisableDomainSuggest disables domain suggestions
func (v *Verifier) DisableDomainSuggest() *Verifier {
	v.suggestEnabled = false
	return v
}

// Verify checks a single email address. Failures never abort, they are
// reported in the status of the result
func (v *Verifier) Verify(ctx context.Context, email string) Result {
	log := logger.FromContext(ctx)

	domain, ok := ExtractDomain(email)
	if !ok {
		log.Debug().Str("email", email).Msg("invalid email format")
		return Result{Email: email, Status: StatusInvalidFormat}
	}

	mx, err := v.CheckMX(ctx, domain)
	status := Status(mx, err)

	ev := log.Debug().Str("email", email).Str("domain", domain).Str("status", status)
	if err != nil {
		ev = ev.Stringer("kind", KindOf(err)).Err(err)
	} else {
		ev = ev.Int("records", len(mx.Records))
	}
	ev.Msg("mx lookup")

	if v.suggestEnabled && err != nil && KindOf(err) == KindDomainNotFound {
		if s := v.SuggestDomain(domain); s != "" {
			log.Warn().Str("email", email).Str("domain", domain).Str("suggestion", s).
				Msg("domain does not exist, did you mean the suggested one?")
		}
	}

	return Result{Email: email, Status: status}
}

// VerifyAll checks the email addresses one after another.
// The results are in the order of the addresses
func (v *Verifier) VerifyAll(ctx context.Context, emails []string) []Result {
	results := make([]Result, 0, len(emails))
	for _, email := range emails {
		results = append(results, v.Verify(ctx, email))
	}
	return results
}
