// Package styling synthesizes the CSS used by reveal animations.
//
// It builds hidden-state declarations per transition kind, expands them with
// vendor prefixes, resolves easing curves into cubic-bezier values, computes
// the smallest set of width ranges that covers the enabled devices and merges
// newly built rules into the text of the single shared stylesheet.
//
// Everything here is a string transformation. Rule text uses the flat
// "property: value;" form and is normalized by Clean and Sanitize, so the
// output of one call can be fed back as the input of the next merge.
package styling
