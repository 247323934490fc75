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

package singer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func productsEntry() *CatalogEntry {
	schema := NewObject(
		RequiredProp("id", Integer("")),
		Prop("sku", String("")),
		Prop("stocking_date", DateTime("")),
		Prop("title", String("")),
	)
	return &CatalogEntry{
		TapStreamID:       "products",
		Stream:            "products",
		Schema:            schema,
		KeyProperties:     []string{"id"},
		ReplicationKey:    "stocking_date",
		ReplicationMethod: ReplicationIncremental,
		Metadata:          StandardMetadata("products", schema, []string{"id"}, ReplicationIncremental, "stocking_date"),
	}
}

func TestStandardMetadata(t *testing.T) {
	e := productsEntry()

	require.Len(t, e.Metadata, 5)
	root := e.Metadata[0]
	assert.Empty(t, root.Breadcrumb)
	assert.Equal(t, []string{"id"}, root.Metadata.TableKeyProperties)
	assert.Equal(t, []string{"stocking_date"}, root.Metadata.ValidReplicationKeys)
	assert.Equal(t, ReplicationIncremental, root.Metadata.ForcedReplicationMethod)

	inclusion := map[string]string{}
	for _, m := range e.Metadata[1:] {
		inclusion[m.Breadcrumb[1]] = m.Metadata.Inclusion
	}
	assert.Equal(t, map[string]string{
		"id":            InclusionAutomatic,
		"sku":           InclusionAvailable,
		"stocking_date": InclusionAutomatic,
		"title":         InclusionAvailable,
	}, inclusion)
}

func TestStandardMetadata_JSONBreadcrumb(t *testing.T) {
	data, err := json.Marshal(productsEntry().Metadata[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"breadcrumb":[]`)
	assert.Contains(t, string(data), `"selected-by-default":true`)
}

func TestCatalogEntry_IsSelected(t *testing.T) {
	e := productsEntry()
	assert.True(t, e.IsSelected(), "selected-by-default applies when selected is absent")

	e.SetSelected(false)
	assert.False(t, e.IsSelected())

	e.SetSelected(true)
	assert.True(t, e.IsSelected())

	bare := &CatalogEntry{TapStreamID: "x"}
	assert.False(t, bare.IsSelected())
	bare.SetSelected(true)
	assert.True(t, bare.IsSelected())
}

func TestCatalogEntry_SelectedProperties(t *testing.T) {
	e := productsEntry()
	for i := range e.Metadata {
		switch {
		case len(e.Metadata[i].Breadcrumb) == 0:
		case e.Metadata[i].Breadcrumb[1] == "sku":
			e.Metadata[i].Metadata.Selected = boolPtr(false)
		case e.Metadata[i].Breadcrumb[1] == "id":
			// automatic wins over an explicit deselect
			e.Metadata[i].Metadata.Selected = boolPtr(false)
		case e.Metadata[i].Breadcrumb[1] == "title":
			e.Metadata[i].Metadata.Inclusion = InclusionUnsupported
			e.Metadata[i].Metadata.Selected = boolPtr(true)
		}
	}

	assert.Equal(t, map[string]bool{"id": true, "stocking_date": true}, e.SelectedProperties())
}

func TestCatalogEntry_SelectedProperties_NoMetadata(t *testing.T) {
	e := productsEntry()
	e.Metadata = nil
	assert.Len(t, e.SelectedProperties(), 4)
}

func TestCatalog_LookupAndValidate(t *testing.T) {
	c := &Catalog{Streams: []*CatalogEntry{productsEntry()}}

	got, ok := c.Lookup("products")
	require.True(t, ok)
	assert.Equal(t, "products", got.Stream)

	_, ok = c.Lookup("orders")
	assert.False(t, ok)

	assert.NoError(t, c.Validate())

	c.Streams = append(c.Streams, productsEntry())
	assert.Error(t, c.Validate())

	assert.Error(t, (&Catalog{Streams: []*CatalogEntry{{}}}).Validate())

	var nilCatalog *Catalog
	_, ok = nilCatalog.Lookup("products")
	assert.False(t, ok)
}

func TestCatalog_JSONRoundTrip(t *testing.T) {
	c := &Catalog{Streams: []*CatalogEntry{productsEntry()}}
	c.Streams[0].SetSelected(false)

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var back Catalog
	require.NoError(t, json.Unmarshal(data, &back))
	require.Len(t, back.Streams, 1)
	assert.False(t, back.Streams[0].IsSelected())
	assert.Equal(t, Types{TypeInteger}, back.Streams[0].Schema.Properties["id"].Type)
}
