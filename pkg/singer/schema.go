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
	"fmt"
)

// JSON Schema type names.
const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeNull    = "null"

	FormatDateTime = "date-time"
)

// Schema is the JSON Schema subset used in catalogs and SCHEMA messages.
type Schema struct {
	Type                 Types              `json:"type,omitempty" yaml:"type,omitempty"`
	Format               string             `json:"format,omitempty" yaml:"format,omitempty"`
	Description          string             `json:"description,omitempty" yaml:"description,omitempty"`
	Properties           map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Items                *Schema            `json:"items,omitempty" yaml:"items,omitempty"`
	Required             []string           `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProperties *bool              `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
	Secret               bool               `json:"secret,omitempty" yaml:"secret,omitempty"`
}

// Types holds one or more JSON Schema type names. It encodes as a plain string
// when there is a single type, and decodes either form.
type Types []string

// MarshalJSON implements json.Marshaler.
func (t Types) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}
	return json.Marshal([]string(t))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Types) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = Types{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("schema type must be a string or list of strings: %w", err)
	}
	*t = many
	return nil
}

// Has reports whether name is one of the types.
func (t Types) Has(name string) bool {
	for _, v := range t {
		if v == name {
			return true
		}
	}
	return false
}

// Property describes one object property for NewObject.
type Property struct {
	Name     string
	Schema   *Schema
	Required bool
}

// NewObject builds an object schema from properties, preserving their
// required flags.
func NewObject(props ...Property) *Schema {
	s := &Schema{
		Type:       Types{TypeObject},
		Properties: make(map[string]*Schema, len(props)),
	}
	for _, p := range props {
		s.Properties[p.Name] = p.Schema
		if p.Required {
			s.Required = append(s.Required, p.Name)
		}
	}
	return s
}

// Prop declares an optional property.
func Prop(name string, schema *Schema) Property {
	return Property{Name: name, Schema: schema}
}

// RequiredProp declares a required property. Its type is not nullable.
func RequiredProp(name string, schema *Schema) Property {
	s := *schema
	s.Type = nonNull(schema.Type)
	return Property{Name: name, Schema: &s, Required: true}
}

// Integer returns a nullable integer schema.
func Integer(description string) *Schema {
	return &Schema{Type: Types{TypeInteger, TypeNull}, Description: description}
}

// Number returns a nullable number schema.
func Number(description string) *Schema {
	return &Schema{Type: Types{TypeNumber, TypeNull}, Description: description}
}

// String returns a nullable string schema.
func String(description string) *Schema {
	return &Schema{Type: Types{TypeString, TypeNull}, Description: description}
}

// DateTime returns a nullable date-time string schema.
func DateTime(description string) *Schema {
	return &Schema{Type: Types{TypeString, TypeNull}, Format: FormatDateTime, Description: description}
}

// Boolean returns a nullable boolean schema.
func Boolean(description string) *Schema {
	return &Schema{Type: Types{TypeBoolean, TypeNull}, Description: description}
}

func nonNull(types Types) Types {
	out := make(Types, 0, len(types))
	for _, t := range types {
		if t != TypeNull {
			out = append(out, t)
		}
	}
	return out
}

// Select returns a copy of an object schema restricted to the named
// properties. Required entries for dropped properties are removed.
func (s *Schema) Select(names map[string]bool) *Schema {
	if s == nil {
		return nil
	}
	out := *s
	out.Properties = make(map[string]*Schema, len(names))
	for name, prop := range s.Properties {
		if names[name] {
			out.Properties[name] = prop
		}
	}
	out.Required = nil
	for _, name := range s.Required {
		if names[name] {
			out.Required = append(out.Required, name)
		}
	}
	return &out
}
