//go:build bench
// +build bench

package b64

import (
	"bytes"
	"math/rand"
	"testing"
)

func benchmarkSizes() []struct {
	name string
	data []byte
} {
	rng := rand.New(rand.NewSource(42))

	sizes := []struct {
		name string
		n    int
	}{
		{name: "small", n: 32},
		{name: "medium", n: 4 << 10},
		{name: "large", n: 1 << 20},
	}

	out := make([]struct {
		name string
		data []byte
	}, len(sizes))
	for i, s := range sizes {
		out[i].name = s.name
		out[i].data = make([]byte, s.n)
		rng.Read(out[i].data)
	}
	return out
}

func BenchmarkEncode(b *testing.B) {
	for _, bm := range benchmarkSizes() {
		b.Run(bm.name, func(b *testing.B) {
			dst := make([]byte, 0, StandardConfig.EncodedLen(len(bm.data)))

			b.SetBytes(int64(len(bm.data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				dst = StandardConfig.AppendEncode(dst[:0], bm.data)
			}
		})
	}
}

func BenchmarkEncode_MIME(b *testing.B) {
	for _, bm := range benchmarkSizes() {
		b.Run(bm.name, func(b *testing.B) {
			dst := make([]byte, 0, MIMEConfig.EncodedLen(len(bm.data)))

			b.SetBytes(int64(len(bm.data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				dst = MIMEConfig.AppendEncode(dst[:0], bm.data)
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	for _, bm := range benchmarkSizes() {
		b.Run(bm.name, func(b *testing.B) {
			encoded := []byte(StandardConfig.EncodeToString(bm.data))
			dst := make([]byte, 0, StandardConfig.DecodedLen(len(encoded))+2)

			b.SetBytes(int64(len(encoded)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var err error
				dst, err = StandardConfig.AppendDecode(dst[:0], encoded)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecode_MIMEStripped(b *testing.B) {
	for _, bm := range benchmarkSizes() {
		b.Run(bm.name, func(b *testing.B) {
			encoded := []byte(MIMEConfig.EncodeToString(bm.data))
			dst := make([]byte, 0, MIMEConfig.DecodedLen(len(encoded))+2)

			b.SetBytes(int64(len(encoded)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var err error
				dst, err = MIMEConfig.AppendDecode(dst[:0], encoded)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkLineWrap(b *testing.B) {
	content := bytes.Repeat([]byte("Q"), 1<<16)
	p, _ := lineWrapParameters(len(content), 76, CRLF)
	buf := make([]byte, p.totalLen)

	b.SetBytes(int64(len(content)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, content)
		lineWrap(buf, len(content), 76, CRLF)
	}
}
