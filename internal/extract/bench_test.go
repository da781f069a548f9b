package extract

import (
	"bytes"
	"testing"

	"github.com/plucky/plucky/internal/registry"
)

var benchInput = bytes.Repeat([]byte(
	"2024-05-01 10.0.0.5 GET https://api.example.com/v1/users 200 "+
		"session=9e107d9d372bb6826bd81d3542a419d6 admin@example.com\n"), 200)

func BenchmarkScanAll(b *testing.B) {
	prog, err := Compile(registry.Default(), nil, "")
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(benchInput)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ScanBytes(prog, benchInput).All()
	}
}

func BenchmarkScanSelection(b *testing.B) {
	prog, err := Compile(registry.Default(), []string{"email-address", "url", "ipv4-address"}, "")
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(benchInput)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ScanBytes(prog, benchInput).All()
	}
}
