package destination

import (
	"fmt"
	"net/url"
	"strings"
)

// TrustedHosts are the only hostnames an override URL may point at. Only the host is
// checked: the path and any webhook token in it are taken on trust.
var TrustedHosts = []string{"discord.com", "discordapp.com"}

type Kind int

const (
	InvalidURLFormat Kind = iota + 1
	UntrustedHost
	MissingDestination
	UnconfiguredForm
)

func (k Kind) String() string {
	switch k {
	case InvalidURLFormat:
		return "InvalidUrlFormat"
	case UntrustedHost:
		return "UntrustedHost"
	case MissingDestination:
		return "MissingDestination"
	case UnconfiguredForm:
		return "UnconfiguredForm"
	}
	return "Unknown"
}

// Error is a classified resolution failure. It never carries a URL.
type Error struct {
	Kind   Kind
	FormID string
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidURLFormat:
		return "override webhook url is not a valid url"
	case UntrustedHost:
		return "override webhook url host is not a discord webhook host"
	case MissingDestination:
		return "no formId and no override webhook url"
	case UnconfiguredForm:
		return fmt.Sprintf("no webhook configured for form %q", e.FormID)
	}
	return "destination resolution failed"
}

// Is lets errors.Is match on kind alone, e.g. errors.Is(err, &Error{Kind: UntrustedHost}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Resolver picks the delivery target for a submission.
type Resolver struct {
	webhooks map[string]string
}

// NewResolver copies the form id to webhook url table.
func NewResolver(webhooks map[string]string) *Resolver {
	m := make(map[string]string, len(webhooks))
	for k, v := range webhooks {
		m[k] = v
	}
	return &Resolver{webhooks: m}
}

// Resolve returns the override url when one is given and valid, otherwise the url
// configured for formID.
func (r *Resolver) Resolve(formID, overrideURL string) (string, error) {
	if override := strings.TrimSpace(overrideURL); override != "" {
		if err := validateOverride(override); err != nil {
			return "", err
		}
		return override, nil
	}

	if strings.TrimSpace(formID) == "" {
		return "", &Error{Kind: MissingDestination}
	}

	target, ok := r.webhooks[formID]
	if !ok || target == "" {
		return "", &Error{Kind: UnconfiguredForm, FormID: formID}
	}
	return target, nil
}

func validateOverride(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &Error{Kind: InvalidURLFormat}
	}

	host := u.Hostname()
	for _, trusted := range TrustedHosts {
		if host == trusted {
			return nil
		}
	}
	return &Error{Kind: UntrustedHost}
}
