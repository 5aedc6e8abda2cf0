package esn_test

import (
	"testing"

	"github.com/katalvlaran/reservoir/builder"
	"github.com/katalvlaran/reservoir/esn"
)

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := esn.New(esn.WithReservoirSize(100)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTrain(b *testing.B) {
	in, out, err := builder.NextStepPairs(builder.BuildChirp(1001, 0))
	if err != nil {
		b.Fatal(err)
	}
	n, err := esn.New(esn.WithReservoirSize(100))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = n.Train(in, out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPredict(b *testing.B) {
	in, out, err := builder.NextStepPairs(builder.BuildSine(1001, 0))
	if err != nil {
		b.Fatal(err)
	}
	n, err := esn.New(esn.WithReservoirSize(100))
	if err != nil {
		b.Fatal(err)
	}
	if _, err = n.Train(in, out); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = n.Predict(in, true); err != nil {
			b.Fatal(err)
		}
	}
}
