package suite

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-coremark/coremark"
	"github.com/ajroetker/go-coremark/coremark/contrib/list"
)

func newTestWorker(t testing.TB, seeds coremark.Seeds, kernels coremark.Kernels, blockSize int) *Worker {
	t.Helper()
	w, err := NewWorker(seeds, kernels, blockSize)
	require.NoError(t, err)
	stride := (blockSize + 7) &^ 7
	region := make([]byte, stride*kernels.Count())
	require.NoError(t, w.InitAll(region, stride))
	return w
}

func TestNewWorkerErrors(t *testing.T) {
	_, err := NewWorker(coremark.Seeds{}, 0, 666)
	assert.ErrorIs(t, err, ErrUnknownKernel)

	_, err = NewWorker(coremark.Seeds{}, 8|coremark.KernelList, 666)
	assert.ErrorIs(t, err, ErrUnknownKernel)

	_, err = NewWorker(coremark.Seeds{}, coremark.KernelMatrix|coremark.KernelState, 666)
	assert.ErrorIs(t, err, ErrListRequired)
}

func TestInitErrors(t *testing.T) {
	w, err := NewWorker(coremark.Seeds{}, coremark.AllKernels, 666)
	require.NoError(t, err)

	assert.Error(t, w.Init(coremark.KernelState, make([]byte, 10)))
	assert.ErrorIs(t, w.Init(coremark.Kernels(0x10), make([]byte, 666)), ErrUnknownKernel)

	small, err := NewWorker(coremark.Seeds{}, coremark.KernelList, 100)
	require.NoError(t, err)
	assert.ErrorIs(t, small.Init(coremark.KernelList, make([]byte, 100)), list.ErrBlockTooSmall)
}

func TestListTakesNoRegion(t *testing.T) {
	assert.Equal(t, coremark.KernelMatrix|coremark.KernelState, RegionKernels(coremark.AllKernels))
	assert.Zero(t, RegionKernels(coremark.KernelList))

	w, err := NewWorker(coremark.Seeds{Seed3: 0x66}, coremark.KernelList, 666)
	require.NoError(t, err)
	require.NoError(t, w.InitAll(nil, 672))
	_, err = w.Iterate(1)
	require.NoError(t, err)

	// Matrix and state fill exactly two strides; nothing is written past them.
	all, err := NewWorker(coremark.Seeds{Seed3: 0x66}, coremark.AllKernels, 666)
	require.NoError(t, err)
	region := make([]byte, 3*672)
	require.NoError(t, all.InitAll(region[:2*672], 672))
	for i, b := range region[2*672:] {
		require.Zero(t, b, "byte %d past the region was written", 2*672+i)
	}
	assert.Error(t, all.InitAll(make([]byte, 672), 672))
}

func TestIterateBeforeInit(t *testing.T) {
	w, err := NewWorker(coremark.Seeds{}, coremark.KernelList, 666)
	require.NoError(t, err)
	_, err = w.Iterate(1)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestResolveLiteral(t *testing.T) {
	w := newTestWorker(t, coremark.Seeds{Seed3: 0x66}, coremark.AllKernels, 666)

	p := list.Payload{Data16: 0x1285}
	assert.Equal(t, int16(0x05), w.Resolve(&p))
	assert.Equal(t, int16(0x1285), p.Data16)
	assert.Equal(t, uint16(0), w.crc)
	assert.Equal(t, 0, w.dispatches)
}

func TestResolvePassthroughOp(t *testing.T) {
	w := newTestWorker(t, coremark.Seeds{Seed3: 0x66}, coremark.AllKernels, 666)

	// op 2 is not a kernel: the raw field is the score.
	p := list.Payload{Data16: 0x3412}
	got := w.Resolve(&p)
	assert.Equal(t, int16(0x12), got)
	assert.Equal(t, int16(0x3492), p.Data16)
	assert.Equal(t, coremark.FoldI16(0x3412, 0), w.crc)
	assert.Equal(t, 0, w.dispatches)
}

func TestResolveOnce(t *testing.T) {
	for _, tc := range []struct {
		name  string
		data  int16
		check func(*Worker) uint16
	}{
		{"matrix", 0x0109, func(w *Worker) uint16 { return w.crcMatrix }},
		{"state", 0x0100, func(w *Worker) uint16 { return w.crcState }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorker(t, coremark.Seeds{Seed3: 0x66}, coremark.AllKernels, 666)

			p := list.Payload{Data16: tc.data}
			first := w.Resolve(&p)
			require.Equal(t, 1, w.dispatches)
			require.NotZero(t, p.Data16&resolvedBit)
			assert.Equal(t, int16(0x0100), p.Data16&^0xff, "high byte must be preserved")
			assert.NotZero(t, tc.check(w))

			crc := w.crc
			second := w.Resolve(&p)
			assert.Equal(t, first, second)
			assert.Equal(t, 1, w.dispatches, "latched payload ran a kernel again")
			assert.Equal(t, crc, w.crc, "latched payload changed the running crc")
		})
	}
}

func TestResolveDisabledKernel(t *testing.T) {
	w := newTestWorker(t, coremark.Seeds{Seed3: 0x66}, coremark.KernelList, 666)

	p := list.Payload{Data16: 0x0109}
	assert.Equal(t, int16(0x09), w.Resolve(&p))
	assert.Equal(t, 0, w.dispatches)
}

func TestCompareByScoreResolvesBoth(t *testing.T) {
	w := newTestWorker(t, coremark.Seeds{Seed3: 0x66}, coremark.AllKernels, 666)

	a := list.Payload{Data16: 0x0085}
	b := list.Payload{Data16: 0x0012}
	assert.Equal(t, int32(5-0x12), w.CompareByScore(&a, &b))
	assert.NotZero(t, b.Data16&resolvedBit)
}

func TestIterateDeterministic(t *testing.T) {
	seeds := coremark.Seeds{Seed1: 0, Seed2: 0, Seed3: 0x66}
	a := newTestWorker(t, seeds, coremark.AllKernels, 2000)
	b := newTestWorker(t, seeds, coremark.AllKernels, 2000)

	ga, err := a.Iterate(2)
	require.NoError(t, err)
	gb, err := b.Iterate(2)
	require.NoError(t, err)
	if diff := cmp.Diff(ga, gb); diff != "" {
		t.Errorf("checksums differ (-a +b):\n%s", diff)
	}

	// Running again on the same worker resets and reproduces the result.
	again, err := a.Iterate(2)
	require.NoError(t, err)
	if diff := cmp.Diff(ga, again); diff != "" {
		t.Errorf("re-run differs (-first +second):\n%s", diff)
	}
}

func TestIterateKeepsListSorted(t *testing.T) {
	w := newTestWorker(t, coremark.Seeds{Seed1: 0x3415, Seed2: 0x3415, Seed3: 0x66}, coremark.AllKernels, 666)
	_, err := w.Iterate(3)
	require.NoError(t, err)

	payloads := w.list.Payloads(w.head)
	require.Len(t, payloads, w.list.Capacity()-1)
	for i := 1; i < len(payloads); i++ {
		assert.LessOrEqual(t, payloads[i-1].Idx, payloads[i].Idx)
	}
}

func TestSeedCRCMatchesProfiles(t *testing.T) {
	for _, p := range Profiles {
		assert.Equal(t, p.SeedCRC, SeedCRC(p.Seeds, p.BlockSize), p.Name)
		got, ok := LookupProfile(p.Seeds, p.BlockSize)
		require.True(t, ok, p.Name)
		assert.Equal(t, p.Name, got.Name)
	}
	_, ok := LookupProfile(coremark.Seeds{Seed1: 1, Seed2: 2, Seed3: 3}, 1234)
	assert.False(t, ok)
}

func TestKnownAnswers(t *testing.T) {
	for _, p := range Profiles {
		t.Run(p.Name, func(t *testing.T) {
			w := newTestWorker(t, p.Seeds, coremark.AllKernels, p.BlockSize)
			got, err := w.Iterate(1)
			require.NoError(t, err)
			assert.Empty(t, p.Validate(0, coremark.AllKernels, got))
		})
	}
}

func TestValidateOnlyEnabledKernels(t *testing.T) {
	p := &Profiles[0]
	got := Checksums{List: p.Known.List, Matrix: p.Known.Matrix ^ 1, State: 0}

	mismatches := p.Validate(3, coremark.KernelList|coremark.KernelMatrix, got)
	require.Len(t, mismatches, 1)
	assert.Equal(t, Mismatch{Worker: 3, Kernel: coremark.KernelMatrix, Got: p.Known.Matrix ^ 1, Want: p.Known.Matrix}, mismatches[0])
	assert.Contains(t, mismatches[0].Error(), "matrix crc")

	assert.Len(t, p.Validate(0, coremark.AllKernels, got), 2)
}

func BenchmarkIterate(b *testing.B) {
	w := newTestWorker(b, coremark.Seeds{Seed3: 0x66}, coremark.AllKernels, 666)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := w.Iterate(1); err != nil {
			b.Fatal(err)
		}
	}
}
