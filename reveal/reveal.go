// Package reveal activates reveal animations on document nodes.
//
// It checks element options, names the per-element CSS classes, merges their
// rules into the shared stylesheet and marks the node. Visibility detection
// and removal of the hidden-state class belong to the document host.
package reveal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/rupor-github/gencfg"
	"go.uber.org/zap"

	"reveal/common"
	"reveal/styling"
)

const (
	// AttrAction marks nodes and style elements managed by reveal.
	AttrAction = "data-action"
	// ActionReveal is the value of AttrAction.
	ActionReveal = "reveal"

	classPrefix = "sr"
	classSep    = "__"
)

// ErrInvalidOptions is returned when option values are out of range.
var ErrInvalidOptions = errors.New("invalid reveal options")

// Node is the part of a document element activation needs.
type Node interface {
	AddClass(names ...string)
	SetAttribute(key, value string)
}

// Stylesheet is the state of the shared style element. It replaces a global
// "style element exists" flag: the zero value means no element yet, the value
// returned by Activate is passed into the next call.
type Stylesheet struct {
	Created bool
	Text    string
}

// Classes are the CSS classes assigned to an activated node. Main carries the
// hidden state and is removed by the host to start the animation, Base carries
// transition timing and stays.
type Classes struct {
	Main string
	Base string
}

// ClassNames builds class names for ref and transition. Empty ref is omitted,
// id keeps names unique among elements sharing ref and transition.
func ClassNames(ref string, transition common.Transition, id string) Classes {
	build := func(base bool) string {
		tokens := []string{classPrefix}
		if s := slug.Make(ref); s != "" {
			tokens = append(tokens, s)
		}
		if base {
			tokens = append(tokens, "base")
		}
		tokens = append(tokens, string(transition), id)
		return strings.Join(tokens, classSep)
	}
	return Classes{Main: build(false), Base: build(true)}
}

// CheckOptions validates option ranges.
func CheckOptions(o styling.Options) error {
	if err := gencfg.Validate(&o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	return nil
}

// Engine activates nodes against a single responsive configuration.
type Engine struct {
	log        *zap.Logger
	responsive styling.Responsive
	merger     *styling.Merger
	newID      func() string
}

// Option configures Engine.
type Option func(*Engine)

// WithIDGenerator replaces random class name suffixes.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		e.newID = fn
	}
}

// NewEngine creates activation engine. Responsive settings are fixed for the
// engine lifetime so every merge into a stylesheet uses the same wrapper.
func NewEngine(responsive styling.Responsive, log *zap.Logger, opts ...Option) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		log:        log.Named("reveal"),
		responsive: responsive,
		merger:     styling.NewMerger(log),
		newID:      randomID,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Activate prepares node for revealing. It returns the updated stylesheet and
// classes added to node. Disabled options leave everything untouched and
// return zero Classes. On error neither node nor stylesheet is changed.
func (e *Engine) Activate(sheet Stylesheet, node Node, o styling.Options) (Stylesheet, Classes, error) {
	if err := CheckOptions(o); err != nil {
		return sheet, Classes{}, err
	}
	if o.Disable {
		e.log.Debug("Reveal disabled", zap.String("ref", o.Ref))
		return sheet, Classes{}, nil
	}

	classes := ClassNames(o.Ref, o.Transition, e.newID())

	mainCSS, err := styling.MainCSS(classes.Main, o)
	if err != nil {
		return sheet, Classes{}, fmt.Errorf("unable to build rules for '%s': %w", o.Ref, err)
	}
	transitionCSS, err := styling.TransitionCSS(classes.Base, o)
	if err != nil {
		return sheet, Classes{}, fmt.Errorf("unable to build transition for '%s': %w", o.Ref, err)
	}
	text, err := e.merger.Merge(sheet.Text, mainCSS, transitionCSS, e.responsive)
	if err != nil {
		return sheet, Classes{}, fmt.Errorf("unable to update stylesheet for '%s': %w", o.Ref, err)
	}

	if !sheet.Created {
		e.log.Debug("Creating stylesheet")
	}
	node.SetAttribute(AttrAction, ActionReveal)
	node.AddClass(classes.Main, classes.Base)

	e.log.Debug("Node activated",
		zap.String("ref", o.Ref),
		zap.Stringer("transition", o.Transition),
		zap.String("class", classes.Main))
	return Stylesheet{Created: true, Text: text}, classes, nil
}

// Preview builds a standalone stylesheet for o as if the element was the only
// one revealed on the page.
func (e *Engine) Preview(o styling.Options) (Stylesheet, Classes, error) {
	return e.Activate(Stylesheet{}, discardNode{}, o)
}

type discardNode struct{}

func (discardNode) AddClass(...string)           {}
func (discardNode) SetAttribute(string, string) {}

func randomID() string {
	return uuid.NewString()[:8]
}
