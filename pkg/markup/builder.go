package markup

import (
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/VanillaMaster/interpolate"
)

// Option configures a Builder.
type Option func(*config)

type config struct {
	policy *bluemonday.Policy
}

// WithPolicy sanitises the merged markup with policy before it is parsed.
// Sanitising applies to the whole text; substitution values are never escaped
// on their own.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		cfg.policy = policy
	}
}

var (
	ugcPolicyOnce sync.Once
	ugcPolicy     *bluemonday.Policy
)

// UGCPolicy returns a shared bluemonday policy suited to user generated
// content. It is built once and must not be modified.
func UGCPolicy() *bluemonday.Policy {
	ugcPolicyOnce.Do(func() {
		ugcPolicy = bluemonday.UGCPolicy()
	})
	return ugcPolicy
}

// Builder turns templates into Fragments.
type Builder struct {
	cfg config
}

// New constructs a Builder applying options in order.
func New(options ...Option) *Builder {
	b := &Builder{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&b.cfg)
	}
	return b
}

var defaultBuilder = New()

// HTML interpolates the template and parses the result into a Fragment.
func HTML(fragments []string, substitutions ...any) (*Fragment, error) {
	return defaultBuilder.Build(fragments, substitutions...)
}

// Build interpolates the template and parses the result into a Fragment.
func (b *Builder) Build(fragments []string, substitutions ...any) (*Fragment, error) {
	if err := interpolate.Validate(fragments, substitutions); err != nil {
		return nil, fmt.Errorf("markup: %w", err)
	}
	return b.Parse(interpolate.Interpolate(fragments, substitutions))
}

// Parse parses already merged markup into a Fragment.
func (b *Builder) Parse(source string) (*Fragment, error) {
	if b.cfg.policy != nil {
		source = b.cfg.policy.Sanitize(source)
	}
	nodes, err := parseInContext(strings.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("markup: parse: %w", err)
	}
	return newFragment(nodes), nil
}
