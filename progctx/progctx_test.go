// Copyright (c) 2024, The OTNS Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

package progctx

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	ctx := New(context.Background())
	_ = context.Context(ctx) // ProgCtx should implement context.Context
	assert.Nil(t, ctx.Cause())
	ctx2 := New(nil) // nolint
	assert.Nil(t, ctx2.Err())
}

func TestProgCtx_CancelWithError(t *testing.T) {
	ctx := New(context.Background())
	err := errors.Errorf("metrics listener failed")
	ctx.Cancel(err)
	ctx.Cancel(errors.Errorf("second error"))
	<-ctx.Done()
	assert.True(t, ctx.Err() == context.Canceled)
	assert.Equal(t, err, ctx.Cause())
	assert.False(t, ctx.IsExit())
}

func TestProgCtx_CancelExit(t *testing.T) {
	ctx := New(context.Background())
	ctx.Cancel(nil)
	<-ctx.Done()
	assert.True(t, ctx.IsExit())

	ctx = New(context.Background())
	ctx.Cancel("console exit")
	assert.True(t, ctx.IsExit())
	assert.Contains(t, ctx.Cause().Error(), "console exit")
}

func TestProgCtx_Defer(t *testing.T) {
	ctx := New(context.Background())
	var calls int32
	ctx.Defer(func() { atomic.AddInt32(&calls, 1) })
	ctx.Defer(func() { atomic.AddInt32(&calls, 1) })
	ctx.Cancel(nil)
	ctx.Cancel(nil)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Panics(t, func() {
		ctx.Defer(func() {})
	})
}

func TestProgCtx_Wait(t *testing.T) {
	ctx := New(context.Background())
	ctx.WaitAdd("console", 1)
	go func() {
		ctx.WaitDone("console")
	}()

	ctx.WaitAdd("metrics", 2)
	for i := 0; i < 2; i++ {
		go func() { defer ctx.WaitDone("metrics") }()
	}

	ctx.Wait()
	assert.Equal(t, 0, ctx.WaitCount())
}

func TestProgCtx_GoPanic(t *testing.T) {
	ctx := New(context.Background())
	ctx.Go("worker", func() {
		panic(errors.New("boom"))
	})
	ctx.Wait()
	<-ctx.Done()
	assert.Contains(t, ctx.Cause().Error(), "boom")
	assert.False(t, ctx.IsExit())
	assert.Equal(t, 0, ctx.WaitCount())
}
