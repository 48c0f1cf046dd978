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

// Package images provides host-side bookkeeping for image resources: id
// allocation, the upload lifecycle of a decoded image, and resolution of
// image sources to raw bytes.
//
// Decoding pixel data and owning GPU textures is the renderer's job; this
// package only tracks identity and lifecycle state on behalf of the host
// application.
package images

// ImageID identifies a logical image resource.
type ImageID uint64

// RawImageID identifies raw pixel data registered directly by the host.
type RawImageID uint64

// IDSource hands out image ids sequentially. The host owns one source per
// scope instead of sharing process-global counters, which keeps id
// allocation deterministic and testable in isolation. The zero value is
// ready to use. An IDSource is not safe for concurrent use.
type IDSource struct {
	nextImage uint64
	nextRaw   uint64
}

// NextImage returns a fresh ImageID.
func (s *IDSource) NextImage() ImageID {
	id := s.nextImage
	s.nextImage++
	return ImageID(id)
}

// NextRaw returns a fresh RawImageID.
func (s *IDSource) NextRaw() RawImageID {
	id := s.nextRaw
	s.nextRaw++
	return RawImageID(id)
}
