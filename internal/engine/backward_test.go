package engine_test

import (
	"math"
	"testing"

	"github.com/trizko/microrunn/internal/engine"
)

// TestBackward_SeedsRootGradient tests that the root's gradient is seeded
// with d(root)/d(root) = 1.
func TestBackward_SeedsRootGradient(t *testing.T) {
	v := engine.New(4.0)

	v.Backward()

	if v.Grad() != 1.0 {
		t.Errorf("root Grad() = %v, want 1", v.Grad())
	}
}

// TestBackward_SharedNodeAccumulates tests gradient accumulation on a node
// used as an operand more than once. y = x + x must give dy/dx = 2, not 1;
// overwriting instead of accumulating keeps only the last path's term.
func TestBackward_SharedNodeAccumulates(t *testing.T) {
	x := engine.New(3.0)
	y := x.Add(x)

	y.Backward()

	if x.Grad() != 2.0 {
		t.Errorf("d(x+x)/dx = %v, want 2 (shared node must accumulate over both paths)", x.Grad())
	}
}

// TestBackward_SharedNodeAcrossBranches tests accumulation when a node feeds
// two different downstream computations: z = x*x + x, dz/dx = 2x + 1.
func TestBackward_SharedNodeAcrossBranches(t *testing.T) {
	x := engine.New(3.0)
	z := x.Mul(x).Add(x)

	z.Backward()

	if want := 2*3.0 + 1; x.Grad() != want {
		t.Errorf("d(x²+x)/dx = %v, want %v", x.Grad(), want)
	}
}

// TestBackward_ChainRule tests the chain rule end-to-end on the graph
// f = tanh(a*b + c).
func TestBackward_ChainRule(t *testing.T) {
	a := engine.New(2.0)
	b := engine.New(-3.0)
	c := engine.New(10.0)
	d := a.Mul(b)
	e := d.Add(c)
	f := e.Tanh()

	f.Backward()

	const tol = 1e-12
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"f", f.Grad(), 1.0},
		{"e", e.Grad(), 1 - f.Data()*f.Data()},
		{"d", d.Grad(), e.Grad()},
		{"c", c.Grad(), e.Grad()},
		{"a", a.Grad(), b.Data() * d.Grad()},
		{"b", b.Grad(), a.Data() * d.Grad()},
	}

	for _, ck := range checks {
		if math.Abs(ck.got-ck.want) > tol {
			t.Errorf("grad(%s) = %v, want %v", ck.name, ck.got, ck.want)
		}
	}
}

// TestBackward_Pow tests the power rule: d(a^n)/da = n * a^(n-1).
func TestBackward_Pow(t *testing.T) {
	a := engine.New(3.0)
	y := a.Pow(2.0)

	y.Backward()

	if a.Grad() != 6.0 {
		t.Errorf("d(a²)/da at a=3 = %v, want 6", a.Grad())
	}
}

// TestBackward_SubAndNeg tests that the derived operations route gradients
// through their add/mul expansion: y = a - b gives dy/da = 1, dy/db = -1.
func TestBackward_SubAndNeg(t *testing.T) {
	a := engine.New(5.0)
	b := engine.New(2.0)
	y := a.Sub(b)

	y.Backward()

	if a.Grad() != 1.0 {
		t.Errorf("d(a-b)/da = %v, want 1", a.Grad())
	}
	if b.Grad() != -1.0 {
		t.Errorf("d(a-b)/db = %v, want -1", b.Grad())
	}
}

// TestBackward_TwiceDoubles is a regression guard documenting that Backward
// is not idempotent: a second call without ZeroGrad re-accumulates on top of
// the existing gradients and doubles every value.
func TestBackward_TwiceDoubles(t *testing.T) {
	x := engine.New(3.0)
	y := x.Add(x)

	y.Backward()
	first := x.Grad()

	y.Backward()

	if want := 2 * first; x.Grad() != want {
		t.Errorf("Grad() after second Backward = %v, want doubled value %v", x.Grad(), want)
	}
}

// TestZeroGrad_ResetsReachableSet tests that ZeroGrad followed by Backward
// reproduces the original gradients instead of accumulating.
func TestZeroGrad_ResetsReachableSet(t *testing.T) {
	a := engine.New(2.0)
	b := engine.New(-3.0)
	y := a.Mul(b).Add(a)

	y.Backward()
	aGrad, bGrad := a.Grad(), b.Grad()

	y.ZeroGrad()

	if a.Grad() != 0 || b.Grad() != 0 || y.Grad() != 0 {
		t.Fatalf("ZeroGrad left grads a=%v b=%v y=%v, want all 0", a.Grad(), b.Grad(), y.Grad())
	}

	y.Backward()

	if a.Grad() != aGrad || b.Grad() != bGrad {
		t.Errorf("grads after ZeroGrad+Backward = (%v, %v), want (%v, %v)", a.Grad(), b.Grad(), aGrad, bGrad)
	}
}

// TestBackward_DeepChain tests a longer chain to exercise the topological
// ordering: y = ((x+1)*2 + x)², x shared between two depths.
func TestBackward_DeepChain(t *testing.T) {
	x := engine.New(1.5)
	two := engine.New(2.0)
	inner := x.Add(engine.New(1.0)).Mul(two).Add(x) // 3x + 2
	y := inner.Pow(2.0)                             // (3x+2)²

	y.Backward()

	// dy/dx = 2(3x+2)*3
	want := 2 * (3*1.5 + 2) * 3
	if math.Abs(x.Grad()-want) > 1e-12 {
		t.Errorf("dy/dx = %v, want %v", x.Grad(), want)
	}
}
