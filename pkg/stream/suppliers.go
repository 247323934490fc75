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

import "github.com/tap-channeldock/tap-channeldock/pkg/singer"

func newSuppliersStream() *Stream {
	return &Stream{
		Name:              "suppliers",
		Path:              "/portal/api/v2/seller/suppliers",
		RecordsKey:        "suppliers",
		KeyProperties:     []string{"id"},
		ReplicationMethod: singer.ReplicationFullTable,
		Schema: singer.NewObject(
			singer.RequiredProp("id", singer.Integer("Internal supplier ID")),

			singer.Prop("firstname", singer.String("Contact first name")),
			singer.Prop("lastname", singer.String("Contact last name")),
			singer.Prop("company", singer.String("Company name")),
			singer.Prop("phone", singer.String("Phone number")),
			singer.Prop("email", singer.String("Email address")),

			singer.Prop("address1", singer.String("Address line 1")),
			singer.Prop("address2", singer.String("Address line 2")),
			singer.Prop("city", singer.String("City")),
			singer.Prop("state", singer.String("State / region")),
			singer.Prop("zipcode", singer.String("Postal code")),
			singer.Prop("country", singer.String("Country code (ISO)")),

			singer.Prop("payment_term", singer.Integer("Payment term in days")),
			singer.Prop("website", singer.String("Company website")),
			singer.Prop("vat", singer.Integer("Indicates if VAT applies (0/1)")),
			singer.Prop("vat_number", singer.String("VAT number")),
		),
	}
}
