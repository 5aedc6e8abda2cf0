// Package reservoir is a small, deterministic Echo State Network toolkit
// for time-series modeling and forecasting.
//
// 🚀 What is reservoir?
//
//	A fixed, randomly wired recurrent "reservoir" driven by the input,
//	plus a linear readout fitted in closed form:
//		• Weight initialization: sparse Wr rescaled to a target spectral radius
//		• Dynamics: tanh (or any) update with optional output feedback
//		• Leaky integration of the reservoir state
//		• Ridge-regression readout via a Moore–Penrose pseudo-inverse
//		• Continuation-aware prediction from the last training step
//
// ✨ Why choose reservoir?
//
//   - Reproducible – one seeded source drives every random draw
//   - Fail-fast – sentinel errors for shapes, untrained use and numeric blow-ups
//   - Small surface – functional options, two verbs (Train, Predict)
//
// Under the hood:
//
//	esn/      - Network, options, Train, Predict, activations, RMSE/NRMSE
//	matrix/   - row-major Dense, kernels, spectral radius, pseudo-inverse (gonum)
//	builder/  - synthetic sequences (sine, chirp, pulse, random walk) + adapters
//	examples/ - runnable programs logging through slog + tint
//
// Quick example:
//
//	in, out, _ := builder.NextStepPairs(builder.BuildSine(501, 0))
//	net, _ := esn.New(esn.WithReservoirSize(100), esn.WithTeacherForcing(false))
//	fitted, _ := net.Train(in, out)
//	next, _ := net.Predict(future, true)
//
//	go get github.com/katalvlaran/reservoir
package reservoir
