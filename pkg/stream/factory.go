// Copyright (c) 2026, The tap-channeldock Authors. All rights reserved.
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

package stream

// Factory creates the streams a tap can sync.
type Factory interface {
	CreateProductsStream() *Stream
	CreateSuppliersStream() *Stream
	Streams() []*Stream
}

// DefaultFactory creates the Channeldock streams.
type DefaultFactory struct{}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory() *DefaultFactory {
	return &DefaultFactory{}
}

// CreateProductsStream creates the seller inventory stream.
func (f *DefaultFactory) CreateProductsStream() *Stream {
	return newProductsStream()
}

// CreateSuppliersStream creates the seller suppliers stream.
func (f *DefaultFactory) CreateSuppliersStream() *Stream {
	return newSuppliersStream()
}

// Streams returns every stream in discovery order.
func (f *DefaultFactory) Streams() []*Stream {
	return []*Stream{
		f.CreateProductsStream(),
		f.CreateSuppliersStream(),
	}
}

// Names returns the names of streams in order.
func Names(streams []*Stream) []string {
	names := make([]string, 0, len(streams))
	for _, s := range streams {
		names = append(names, s.Name)
	}
	return names
}
