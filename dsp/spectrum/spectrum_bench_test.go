package spectrum

import "testing"

var benchSizes = []struct {
	name string
	size int
}{
	{"64", 64},
	{"256", 256},
	{"1K", 1024},
	{"4K", 4096},
	{"16K", 16384},
}

func BenchmarkMagnitudeFromInterleaved(b *testing.B) {
	for _, testCase := range benchSizes {
		b.Run(testCase.name, func(b *testing.B) {
			interleaved := make([]float64, 2*testCase.size)
			for i := range interleaved {
				interleaved[i] = float64(i) / 10.0
			}
			dst := make([]float64, testCase.size)

			b.SetBytes(int64(testCase.size * 16)) // re+im = 16 bytes per bin
			b.ResetTimer()

			for range b.N {
				MagnitudeFromInterleaved(dst, interleaved)
			}
		})
	}
}

func BenchmarkMagnitudeFromParts(b *testing.B) {
	for _, testCase := range benchSizes {
		b.Run(testCase.name, func(b *testing.B) {
			re := make([]float64, testCase.size)
			im := make([]float64, testCase.size)
			dst := make([]float64, testCase.size)

			for i := range re {
				re[i] = float64(i) / 10.0
				im[i] = float64(testCase.size-i) / 10.0
			}

			b.SetBytes(int64(testCase.size * 16)) // re+im = 16 bytes per element
			b.ResetTimer()

			for range b.N {
				MagnitudeFromParts(dst, re, im)
			}
		})
	}
}

func BenchmarkPowerFromParts(b *testing.B) {
	for _, testCase := range benchSizes {
		b.Run(testCase.name, func(b *testing.B) {
			re := make([]float64, testCase.size)
			im := make([]float64, testCase.size)
			dst := make([]float64, testCase.size)

			for i := range re {
				re[i] = float64(i) / 10.0
				im[i] = float64(testCase.size-i) / 10.0
			}

			b.SetBytes(int64(testCase.size * 16)) // re+im = 16 bytes per element
			b.ResetTimer()

			for range b.N {
				PowerFromParts(dst, re, im)
			}
		})
	}
}

func BenchmarkAmplitudeToDB(b *testing.B) {
	for _, testCase := range benchSizes {
		b.Run(testCase.name, func(b *testing.B) {
			src := make([]float64, testCase.size)
			dst := make([]float64, testCase.size)
			for i := range src {
				src[i] = float64(i) / float64(testCase.size)
			}

			b.SetBytes(int64(testCase.size * 8))
			b.ResetTimer()

			for range b.N {
				AmplitudeToDB(dst, src)
			}
		})
	}
}
