// Copyright 2026 The domdiff Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package images

import "fmt"

// Kind tags the phase of an image's upload lifecycle.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	PendingUpload   Kind = iota // decoded, not yet handed to the renderer
	Uploaded                    // resource is available to the renderer
	PendingDeletion             // scheduled for deletion on the next frame
)

// ImageKey references an uploaded texture in the renderer.
type ImageKey uint64

// Descriptor describes decoded pixel data independently of the lifecycle
// phase.
type Descriptor struct {
	Width, Height int
	Opaque        bool
}

// State is the upload lifecycle state of a single image: a tagged variant
// over the three phases of [Kind]. The zero value is an empty pending upload.
type State struct {
	kind   Kind
	desc   Descriptor
	data   []byte
	key    ImageKey
	hasKey bool
}

// NewPendingUpload returns the state of an image that is decoded but not yet
// available to the renderer.
func NewPendingUpload(data []byte, desc Descriptor) State {
	return State{kind: PendingUpload, data: data, desc: desc}
}

// NewUploaded returns the state of an image whose texture is available to
// the renderer under key.
func NewUploaded(key ImageKey, desc Descriptor) State {
	return State{kind: Uploaded, key: key, hasKey: true, desc: desc}
}

// NewPendingDeletion returns the state of an image that is about to be
// deleted in the next frame. uploaded reports whether a texture was ever
// created for it; if not, key is ignored.
func NewPendingDeletion(key ImageKey, uploaded bool, desc Descriptor) State {
	return State{kind: PendingDeletion, key: key, hasKey: uploaded, desc: desc}
}

// Kind returns the lifecycle phase.
func (s State) Kind() Kind { return s.kind }

// Descriptor returns the pixel descriptor, defined for every phase.
func (s State) Descriptor() Descriptor { return s.desc }

// Dimensions returns the original dimensions of the image.
func (s State) Dimensions() (w, h float64) {
	switch s.kind {
	case PendingUpload, Uploaded, PendingDeletion:
		return float64(s.desc.Width), float64(s.desc.Height)
	default:
		panic(fmt.Sprintf("images: unknown state kind %v", s.kind))
	}
}

// Key returns the renderer key and whether one exists for this phase: always
// for Uploaded, never for PendingUpload, and only if a texture was created
// for PendingDeletion.
func (s State) Key() (ImageKey, bool) {
	switch s.kind {
	case PendingUpload:
		return 0, false
	case Uploaded, PendingDeletion:
		return s.key, s.hasKey
	default:
		panic(fmt.Sprintf("images: unknown state kind %v", s.kind))
	}
}

// Data returns the decoded pixel bytes held for upload; ok is false outside
// the PendingUpload phase.
func (s State) Data() (data []byte, ok bool) {
	if s.kind != PendingUpload {
		return nil, false
	}
	return s.data, true
}
