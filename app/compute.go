// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// SubmitCompute submits the commands recorded on the system since
// [gpu.ComputeSystem.BeginComputePass] to the device queue, and
// releases the pass and the command encoder. You must call ce.End
// before calling this, and can record further commands on the
// system encoder after ce.End, such as copies to readback buffers.
func SubmitCompute(sy *gpu.ComputeSystem, ce *wgpu.ComputePassEncoder) error {
	cmd := sy.CommandEncoder
	sy.CommandEncoder = nil
	cb, err := cmd.Finish(nil)
	if errors.Log(err) != nil {
		return err
	}
	sy.Device().Queue.Submit(cb)
	cb.Release()
	ce.Release()
	cmd.Release()
	return nil
}
