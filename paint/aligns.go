// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

// Aligns are alignments of text within its box, along one axis.
type Aligns int32

const (
	// Start aligns to the left (horizontal) or top (vertical) edge.
	Start Aligns = iota

	// Center aligns to the middle.
	Center

	// End aligns to the right (horizontal) or bottom (vertical) edge.
	End
)

func (al Aligns) String() string {
	switch al {
	case Start:
		return "Start"
	case Center:
		return "Center"
	case End:
		return "End"
	}
	return "Aligns(?)"
}
