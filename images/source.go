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

import (
	"errors"
	"fmt"
	"os"
)

// ErrUnknownRawImage is returned by [Source.Bytes] when a raw source
// references an id that was never registered.
var ErrUnknownRawImage = errors.New("images: unknown raw image id")

type sourceKind int

const (
	sourceEmbedded sourceKind = iota
	sourceFile
	sourceRaw
)

// Source locates the bytes of an image: embedded in the binary, stored on
// disk, or registered as raw pixel data under a [RawImageID].
type Source struct {
	kind     sourceKind
	embedded []byte
	path     string
	raw      RawImageID
}

// Embedded returns a source for bytes compiled into the binary.
func Embedded(data []byte) Source {
	return Source{kind: sourceEmbedded, embedded: data}
}

// File returns a source for an image file on disk.
func File(path string) Source {
	return Source{kind: sourceFile, path: path}
}

// Raw returns a source for raw pixel data registered under id.
func Raw(id RawImageID) Source {
	return Source{kind: sourceRaw, raw: id}
}

// Bytes resolves the source to its bytes. File sources are read from disk on
// every call so that edited files can be reloaded; raw sources are looked up
// in the registry the host passes in.
func (s Source) Bytes(raws map[RawImageID][]byte) ([]byte, error) {
	switch s.kind {
	case sourceEmbedded:
		return s.embedded, nil
	case sourceFile:
		b, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("images: reading %q: %w", s.path, err)
		}
		return b, nil
	case sourceRaw:
		b, ok := raws[s.raw]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownRawImage, s.raw)
		}
		return b, nil
	default:
		panic("never reached")
	}
}
