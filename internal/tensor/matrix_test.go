package tensor

import (
	"math/rand"
	"testing"

	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestMatMul(t *testing.T) {
	a := Must(FromData(Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6}))
	b := Must(FromData(Shape{3, 2}, []float64{7, 8, 9, 10, 11, 12}))

	c, err := a.MatMul(b)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, c.Shape())
	assert.Equal(t, []float64{58, 64, 139, 154}, c.Data())
}

func TestMatMulVectorShapes(t *testing.T) {
	row := Must(FromData(Shape{1, 3}, []float64{1, 2, 3}))
	col := Must(FromData(Shape{3, 1}, []float64{4, 5, 6}))

	dot, err := row.MatMul(col)
	require.NoError(t, err)
	assert.Equal(t, Shape{1, 1}, dot.Shape())
	assert.Equal(t, []float64{32}, dot.Data())

	outer, err := col.MatMul(row)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 3}, outer.Shape())
	assert.Equal(t, []float64{4, 8, 12, 5, 10, 15, 6, 12, 18}, outer.Data())
}

func TestMatMulErrors(t *testing.T) {
	m23 := Must(New(Shape{2, 3}))
	m22 := Must(New(Shape{2, 2}))
	v3 := Must(New(Shape{3}))
	t3 := Must(New(Shape{2, 3, 1}))

	tests := []struct {
		name string
		a, b *Tensor
		err  error
	}{
		{"1D first operand", v3, m23, ErrRank},
		{"1D second operand", m23, v3, ErrRank},
		{"3D operand", t3, m22, ErrRank},
		{"inner dimension mismatch", m23, m22, ErrDimensionMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.a.MatMul(tt.b)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestMatMulAgainstGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(7)) //nolint:gosec // G404: deterministic test data

	for iter := 0; iter < 50; iter++ {
		m, k, n := 1+rng.Intn(12), 1+rng.Intn(12), 1+rng.Intn(12)
		a := randomTensor(rng, Shape{m, k})
		b := randomTensor(rng, Shape{k, n})

		got, err := a.MatMul(b)
		require.NoError(t, err)

		da, err := a.ToDense()
		require.NoError(t, err)
		db, err := b.ToDense()
		require.NoError(t, err)

		var want mat.Dense
		want.Mul(da, db)

		require.True(t, floats.EqualApprox(want.RawMatrix().Data, got.Data(), 1e-9),
			"[%d,%d]@[%d,%d]", m, k, k, n)
	}
}

func TestMatMulParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(11)) //nolint:gosec // G404: deterministic test data

	a := randomTensor(rng, Shape{97, 31})
	b := randomTensor(rng, Shape{31, 13})

	seq, err := a.MatMulWith(b, parallel.Sequential())
	require.NoError(t, err)

	par, err := a.MatMulWith(b, parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8})
	require.NoError(t, err)

	// Bit-identical: each element is summed in the same order.
	assert.Equal(t, seq.Data(), par.Data())
}

func TestMatAddMatSub(t *testing.T) {
	a := Must(FromData(Shape{2, 2}, []float64{1, 2, 3, 4}))
	b := Must(FromData(Shape{2, 2}, []float64{10, 20, 30, 40}))

	sum, err := a.MatAdd(b)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, sum.Shape())
	assert.Equal(t, []float64{11, 22, 33, 44}, sum.Data())

	diff, err := b.MatSub(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 18, 27, 36}, diff.Data())

	// MatAdd and MatSub accept any rank as long as shapes match.
	v := Must(FromData(Shape{3}, []float64{1, 2, 3}))
	vv, err := v.MatAdd(v)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, vv.Data())
}

func TestMatAddLargeMatchesElementwise(t *testing.T) {
	rng := rand.New(rand.NewSource(3)) //nolint:gosec // G404: deterministic test data

	// Large enough to be split across workers.
	a := randomTensor(rng, Shape{64, 33})
	b := randomTensor(rng, Shape{64, 33})

	sum, err := a.MatAdd(b)
	require.NoError(t, err)
	diff, err := a.MatSub(b)
	require.NoError(t, err)

	for i := range a.Data() {
		require.Equal(t, a.Data()[i]+b.Data()[i], sum.Data()[i], "index %d", i)
		require.Equal(t, a.Data()[i]-b.Data()[i], diff.Data()[i], "index %d", i)
	}
}

func TestMatAddShapeMismatch(t *testing.T) {
	a := Must(New(Shape{2, 2}))
	b := Must(New(Shape{2, 3}))

	sum, err := a.MatAdd(b)
	assert.Nil(t, sum)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	diff, err := a.MatSub(b)
	assert.Nil(t, diff)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	// Broadcast-compatible shapes are still rejected.
	row := Must(New(Shape{1, 2}))
	_, err = a.MatAdd(row)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
