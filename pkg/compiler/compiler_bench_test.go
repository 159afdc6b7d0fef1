package compiler

import "testing"

// simpleExpr is a short expression benchmarking the fast path.
const simpleExpr = "9000 + (6 * 4)"

// complexExpr exercises every operator and several nesting levels.
const complexExpr = "((1 + 2) * (3 + 4) - 5) / 2 + 100 * (7 - (8 / 4)) - (9 + 10) * 11 + 12345 / (6 + 7)"

func benchmarkCompile(b *testing.B, src string) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Compile(src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompileSimple(b *testing.B)  { benchmarkCompile(b, simpleExpr) }
func BenchmarkCompileComplex(b *testing.B) { benchmarkCompile(b, complexExpr) }
