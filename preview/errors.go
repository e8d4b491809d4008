// SPDX-License-Identifier: MIT

package preview

import "errors"

var (
	// ErrEmptyDrawing indicates the drawing has no finite extent to render.
	ErrEmptyDrawing = errors.New("preview: drawing has no finite extent")

	// ErrInvalidOptions indicates a non-positive canvas size or a margin that
	// leaves no drawable area.
	ErrInvalidOptions = errors.New("preview: invalid options")
)
