// Package esn implements an Echo State Network: a fixed, randomly wired
// recurrent reservoir driving a linear readout trained by ridge regression.
//
// The package offers:
//
//   - New: draws the reservoir (Wr, rescaled to a target spectral radius),
//     input (Wi, bias column first) and feedback (Wf) weights from a Source.
//   - Train: collects the teacher-forced state trajectory, drops a transient
//     and solves Wo = Oe·Xeᵀ·pinv(Xe·Xeᵀ + λI). It also records the last
//     time step as the continuation checkpoint.
//   - Predict: replays the reservoir with the trained readout, either from
//     the checkpoint (cont) or from zero.
//   - RMSE / NRMSE: error metrics over a column window.
//
// Architectures: WithTeacherForcing(true) (the default) feeds the previous
// output back through Wf. During Train that is the target; during Predict it
// is the network's own previous forecast. WithTeacherForcing(false) uses
// inputs only.
//
// Sequences are time-major: one row per channel, one column per step. The
// builder package produces such matrices from synthetic signals.
//
// Errors are package sentinels (ErrShapeMismatch, ErrNotTrained, ...) wrapped
// with operation context; match them with errors.Is.
//
// A Network is not safe for concurrent use; Train mutates the readout.
package esn
