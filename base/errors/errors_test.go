// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil))

	err := Wrap(io.EOF)
	var e *Error
	require.True(t, As(err, &e))
	assert.Equal(t, io.EOF, e.Base)
	assert.True(t, Is(err, io.EOF))
	assert.Equal(t, "EOF", err.Error())
	require.NotEmpty(t, e.Stack)
	assert.True(t, strings.HasSuffix(e.Stack[0], "TestWrap"), e.Stack[0])

	assert.Same(t, err, Wrap(err))
}

func TestErrorf(t *testing.T) {
	base := New("base")
	err := Errorf("outer: %w", base)
	assert.Equal(t, "outer: base", err.Error())
	assert.True(t, Is(err, base))

	var e *Error
	require.True(t, As(err, &e))
	assert.Contains(t, e.StackString(), "outer: base (")
}

func TestDetails(t *testing.T) {
	assert.Equal(t, "EOF", Details(io.EOF))

	err := Join(io.ErrUnexpectedEOF, Wrap(io.EOF))
	d := Details(err)
	assert.True(t, strings.HasPrefix(d, "EOF ("), d)
	assert.Contains(t, d, "TestDetails")
}

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	assert.Equal(t, io.EOF, Log(io.EOF))
	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 0, Log1(0, io.EOF))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(io.EOF) })
}
