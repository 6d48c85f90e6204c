// Package domain defines the core interfaces and types for Kavach.
package domain

import "strings"

// Question is a node in the triage question graph.
type Question struct {
	ID       string   `json:"id" yaml:"id"`
	Text     string   `json:"text" yaml:"text"`
	Subtitle string   `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Icon     string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Options  []Option `json:"options" yaml:"options"`
}

// Option is one selectable answer on a question.
//
// Exactly one of Next, Resolver, or Endpoint is set: Next names the following
// question directly, Resolver names a routing function registered with the
// graph that picks the next question from the accumulated answers, and
// Endpoint marks the option as terminal (answering it completes the triage).
type Option struct {
	Value    string `json:"value" yaml:"value"`
	Label    string `json:"label" yaml:"label"`
	Icon     string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Next     string `json:"next,omitempty" yaml:"next,omitempty"`
	Resolver string `json:"resolver,omitempty" yaml:"resolver,omitempty"`
	Endpoint bool   `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
}

// Terminal reports whether choosing this option ends the questionnaire.
func (o Option) Terminal() bool {
	return o.Endpoint
}

// AnswerMap maps a question ID to the chosen option value. One entry per
// visited question; entries are removed only on backward navigation.
type AnswerMap map[string]string

// Clone returns an independent copy of the answer map.
func (a AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// PathToken encodes one traversal step as "questionId:optionValue".
func PathToken(questionID, value string) string {
	return questionID + ":" + value
}

// SplitPathToken returns the question ID and option value from a path token.
func SplitPathToken(token string) (questionID, value string) {
	questionID, value, _ = strings.Cut(token, ":")
	return questionID, value
}
