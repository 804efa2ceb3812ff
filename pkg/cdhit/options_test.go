package cdhit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueToken(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
		emitted  bool
	}{
		{"string", String("run one"), "run one", true},
		{"empty string is kept", String(""), "", true},
		{"zero value is empty string", Value{}, "", true},
		{"int", Int(5), "5", true},
		{"zero int", Int(0), "0", true},
		{"negative int", Int(-1), "-1", true},
		{"float", Float(0.9), "0.9", true},
		{"whole float", Float(1), "1", true},
		{"large float", Float(1e7), "10000000", true},
		{"true", Bool(true), "1", true},
		{"false", Bool(false), "0", true},
		{"absent", Absent(), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, ok := tt.value.Token()
			assert.Equal(t, tt.emitted, ok)
			assert.Equal(t, tt.expected, tok)
		})
	}
}

func TestOptionsArgs(t *testing.T) {
	tests := []struct {
		name     string
		options  *Options
		expected []string
	}{
		{
			name:     "nil options",
			options:  nil,
			expected: nil,
		},
		{
			name:     "empty options",
			options:  NewOptions(),
			expected: nil,
		},
		{
			name:     "insertion order and stringification",
			options:  NewOptions(Option{"-c", Float(0.9)}, Option{"-n", Int(5)}),
			expected: []string{"-c", "0.9", "-n", "5"},
		},
		{
			name:     "reverse insertion order",
			options:  NewOptions(Option{"-n", Int(5)}, Option{"-c", Float(0.9)}),
			expected: []string{"-n", "5", "-c", "0.9"},
		},
		{
			name:     "absent value emits key only",
			options:  NewOptions(Option{"-c", Float(0.9)}, Option{"-g", Absent()}, Option{"-n", Int(5)}),
			expected: []string{"-c", "0.9", "-g", "-n", "5"},
		},
		{
			name:     "falsy values are not dropped",
			options:  NewOptions(Option{"-d", Int(0)}, Option{"-g", Bool(false)}, Option{"-T", String("")}),
			expected: []string{"-d", "0", "-g", "0", "-T", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.options.Args())
		})
	}
}

func TestOptionsSetKeepsPosition(t *testing.T) {
	o := &Options{}
	o.Set("-c", Float(0.9))
	o.Set("-n", Int(5))
	o.Set("-c", Float(0.95))

	assert.Equal(t, 2, o.Len())
	assert.Equal(t, []string{"-c", "0.95", "-n", "5"}, o.Args())

	v, ok := o.Get("-c")
	assert.True(t, ok)
	assert.Equal(t, KindFloat, v.Kind())
	_, ok = o.Get("-M")
	assert.False(t, ok)
}

func TestOptionsMerge(t *testing.T) {
	defaults := NewOptions(Option{"-c", Float(0.9)}, Option{"-n", Int(5)}, Option{"-g", Absent()})
	overrides := NewOptions(Option{"-n", String("4")}, Option{"-M", Int(16000)})

	merged := defaults.Merge(overrides)

	assert.Equal(t, []string{"-c", "0.9", "-n", "4", "-g", "-M", "16000"}, merged.Args())
	assert.Equal(t, []string{"-c", "0.9", "-n", "5", "-g"}, defaults.Args(), "receiver is not modified")

	var none *Options
	assert.Equal(t, []string{"-n", "4", "-M", "16000"}, none.Merge(overrides).Args())
	assert.Equal(t, defaults.Args(), defaults.Merge(nil).Args())
}
