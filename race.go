// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package syncx

// RaceEnabled is true when the race detector is active.
// Tests use it to skip concurrent SpinFlagQueue stress runs, whose
// atomix flag accesses are invisible to the detector.
const RaceEnabled = true
