// Package validation holds the results of property- and object-level
// validation passes. Models fill a Results during a pass; the framework only
// stores and reports them.
package validation

import (
	"errors"
	"slices"
	"strings"
)

// Result is one validation message and the properties it concerns. A result
// naming no property applies to the object as a whole.
type Result struct {
	Message    string
	Properties []string
}

// Error implements error.
func (r *Result) Error() string { return r.Message }

// Concerns reports whether the result names property.
func (r *Result) Concerns(property string) bool {
	return slices.Contains(r.Properties, property)
}

// Results is an ordered, mutable list of validation results. The zero value
// is empty and ready to use.
type Results struct {
	items []*Result
}

// Add appends a result built from msg and properties.
func (rs *Results) Add(msg string, properties ...string) *Result {
	r := &Result{Message: msg, Properties: slices.Clone(properties)}
	rs.items = append(rs.items, r)
	return r
}

// Append adds results that were built elsewhere. Nil entries are skipped.
func (rs *Results) Append(results ...*Result) {
	for _, r := range results {
		if r != nil {
			rs.items = append(rs.items, r)
		}
	}
}

// Len returns the number of results.
func (rs *Results) Len() int { return len(rs.items) }

// All returns the results in insertion order.
func (rs *Results) All() []*Result { return slices.Clone(rs.items) }

// ForProperty returns the results naming property. An empty name selects the
// object-level results.
func (rs *Results) ForProperty(property string) []*Result {
	var out []*Result
	for _, r := range rs.items {
		if property == "" && len(r.Properties) == 0 || property != "" && r.Concerns(property) {
			out = append(out, r)
		}
	}
	return out
}

// RemoveProperty drops every result naming property and reports how many
// were removed. Results naming other properties as well are dropped too.
func (rs *Results) RemoveProperty(property string) int {
	before := len(rs.items)
	rs.items = slices.DeleteFunc(rs.items, func(r *Result) bool {
		if property == "" {
			return len(r.Properties) == 0
		}
		return r.Concerns(property)
	})
	return before - len(rs.items)
}

// Clear removes all results.
func (rs *Results) Clear() { rs.items = nil }

// Messages returns the messages in insertion order.
func (rs *Results) Messages() []string {
	out := make([]string, len(rs.items))
	for i, r := range rs.items {
		out[i] = r.Message
	}
	return out
}

// Err returns nil when there are no results, otherwise an error joining all
// of them. Each result stays reachable through errors.As.
func (rs *Results) Err() error {
	if len(rs.items) == 0 {
		return nil
	}
	errList := make([]error, len(rs.items))
	for i, r := range rs.items {
		errList[i] = r
	}
	return errors.Join(errList...)
}

// String joins the messages with "; ".
func (rs *Results) String() string {
	return strings.Join(rs.Messages(), "; ")
}
