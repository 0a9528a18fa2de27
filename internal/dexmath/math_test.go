package dexmath

import (
	"math/big"
	"testing"
)

func bi(s string) *big.Int {
	z, _ := new(big.Int).SetString(s, 10)
	return z
}

func TestMinAmountOut_Basic(t *testing.T) {
	t.Parallel()

	out, ok := MinAmountOut(bi("250000"), 50)
	if !ok {
		t.Fatalf("ok=false")
	}
	if out.Cmp(bi("248750")) != 0 {
		t.Fatalf("want 248750 got %s", out.String())
	}
}

func TestMinAmountOut_RoundsHalfUp(t *testing.T) {
	t.Parallel()

	// 1 * 0.995 = 0.995 -> 1
	out, ok := MinAmountOut(bi("1"), 50)
	if !ok || out.Cmp(bi("1")) != 0 {
		t.Fatalf("want 1 got %s (ok=%v)", out.String(), ok)
	}
	// 101 * 0.995 = 100.495 -> 100
	out, ok = MinAmountOut(bi("101"), 50)
	if !ok || out.Cmp(bi("100")) != 0 {
		t.Fatalf("want 100 got %s (ok=%v)", out.String(), ok)
	}
	// 110 * 0.995 = 109.45 -> 109
	out, ok = MinAmountOut(bi("110"), 50)
	if !ok || out.Cmp(bi("109")) != 0 {
		t.Fatalf("want 109 got %s (ok=%v)", out.String(), ok)
	}
	// 100 * 0.995 = 99.5 -> 100
	out, ok = MinAmountOut(bi("100"), 50)
	if !ok || out.Cmp(bi("100")) != 0 {
		t.Fatalf("want 100 got %s (ok=%v)", out.String(), ok)
	}
}

func TestMinAmountOutInto_Invalid(t *testing.T) {
	t.Parallel()

	out := new(big.Int)
	if ok := MinAmountOutInto(out, bi("-1"), 50); ok {
		t.Fatal("negative amount should be false")
	}
	if ok := MinAmountOutInto(out, bi("1"), 10_000); ok {
		t.Fatal("full slippage should be false")
	}
	if ok := MinAmountOutInto(nil, bi("1"), 50); ok {
		t.Fatal("nil out should be false")
	}
	if ok := MinAmountOutInto(out, bi("0"), 0); !ok || out.Sign() != 0 {
		t.Fatalf("zero amount: ok=%v out=%s", ok, out.String())
	}
}

func TestMinimumReceived(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"2500.00": "2487.50",
		"1.00":    "1.00",
		"0.01":    "0.01",
		"10.10":   "10.05",
		"":        NoQuote,
		"garbage": NoQuote,
	}
	for in, want := range cases {
		if got := MinimumReceived(in, 50); got != want {
			t.Fatalf("MinimumReceived(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDisplayQuote(t *testing.T) {
	t.Parallel()

	if got := DisplayQuote(bi("250000"), 2); got != "2500.00" {
		t.Fatalf("want 2500.00 got %s", got)
	}
	if got := DisplayQuote(bi("1999999999999999999"), 18); got != "1.99" {
		t.Fatalf("want 1.99 got %s", got)
	}
}

func BenchmarkMinAmountOut_Allocating(b *testing.B) {
	amt := bi("987654321000000000000000")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, ok := MinAmountOut(amt, 50); !ok {
			b.Fatal("unexpected false")
		}
	}
}

func BenchmarkMinAmountOut_NoAllocs(b *testing.B) {
	amt := bi("987654321000000000000000")
	out := new(big.Int)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if !MinAmountOutInto(out, amt, 50) {
			b.Fatal("unexpected false")
		}
	}
}
