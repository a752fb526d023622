package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-coremark/coremark"
	"github.com/ajroetker/go-coremark/coremark/harness"
)

func TestParseValue(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want int32
	}{
		{"0", 0},
		{"123", 123},
		{"-5", -5},
		{"0x3415", 0x3415},
		{"0x66", 0x66},
		{"0xFF", 0xff},
		{"-0x10", -16},
		{"2K", 2048},
		{"1M", 1 << 20},
		{"0x2K", 2048},
		{"0xffffffff", -1},
	} {
		got, err := ParseValue(tc.in)
		if err != nil {
			t.Errorf("ParseValue(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseValue(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseValueErrors(t *testing.T) {
	for _, in := range []string{"", "-", "0x", "abc", "12x", "2k", "1KB", "0x1g"} {
		_, err := ParseValue(in)
		assert.ErrorIs(t, err, errBadValue, "ParseValue(%q)", in)
	}
}

func TestParseKernels(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want coremark.Kernels
	}{
		{"7", coremark.AllKernels},
		{"0x3", coremark.KernelList | coremark.KernelMatrix},
		{"list", coremark.KernelList},
		{"list|state", coremark.KernelList | coremark.KernelState},
		{"List, Matrix", coremark.KernelList | coremark.KernelMatrix},
		{"all", coremark.AllKernels},
	} {
		got, err := parseKernels(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := parseKernels("bogus")
	assert.Error(t, err)
	_, err = parseKernels("")
	assert.Error(t, err)
}

func TestApplyPositional(t *testing.T) {
	var cfg harness.Config
	require.NoError(t, applyPositional([]string{"0x3415", "0x3415", "0x66", "10", "3", "0", "1200"}, &cfg))
	assert.Equal(t, harness.Config{
		Seeds:      coremark.Seeds{Seed1: 0x3415, Seed2: 0x3415, Seed3: 0x66},
		Iterations: 10,
		Kernels:    coremark.KernelList | coremark.KernelMatrix,
		Size:       1200,
	}, cfg)

	cfg = harness.Config{Size: 900}
	require.NoError(t, applyPositional([]string{"-1", "0", "0", "0", "0", "0", "0"}, &cfg))
	assert.Equal(t, int16(-1), cfg.Seeds.Seed1)
	assert.Equal(t, 900, cfg.Size, "zero size keeps the previous value")

	// Seeds truncate to 16 bits.
	require.NoError(t, applyPositional([]string{"0x13415"}, &cfg))
	assert.Equal(t, int16(0x3415), cfg.Seeds.Seed1)

	assert.Error(t, applyPositional([]string{"1", "2", "3", "4", "5", "6", "7", "8"}, &cfg))
	assert.ErrorIs(t, applyPositional([]string{"1", "x"}, &cfg), errBadValue)
}
