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

import (
	"encoding/json"
	"log/slog"
	"net/url"

	"github.com/tap-channeldock/tap-channeldock/pkg/singer"
)

const (
	productsName           = "products"
	productsReplicationKey = "stocking_date"
)

// productsJSONFields arrive as arrays or objects and are emitted as JSON strings.
var productsJSONFields = []string{"tags", "child_products"}

func newProductsStream() *Stream {
	return &Stream{
		Name:              productsName,
		Path:              "/portal/api/v2/seller/inventory",
		RecordsKey:        "products",
		KeyProperties:     []string{"id"},
		ReplicationMethod: singer.ReplicationIncremental,
		ReplicationKey:    productsReplicationKey,
		Schema:            productsSchema(),
		Params:            productsParams,
		PostProcess:       productsPostProcess,
	}
}

func productsParams(q url.Values, w Window) {
	q.Set("sort_attr", productsReplicationKey)
	q.Set("sort_dir", "ASC")
	if start := formatAPIDate(w.Start); start != "" {
		q.Set("start_date", start)
	}
	if end := formatAPIDate(w.End); end != "" {
		q.Set("end_date", end)
	}
	if w.DateFrom != "" {
		q.Set("date_from", w.DateFrom)
	}
}

func productsPostProcess(rec map[string]any) map[string]any {
	for _, field := range productsJSONFields {
		switch v := rec[field].(type) {
		case nil:
			rec[field] = nil
		case []any, map[string]any:
			encoded, err := json.Marshal(v)
			if err != nil {
				slog.Warn("failed to encode product field", "field", field, "error", err)
				rec[field] = nil
				continue
			}
			rec[field] = string(encoded)
		}
	}
	return rec
}

func productsSchema() *singer.Schema {
	return singer.NewObject(
		singer.RequiredProp("id", singer.Integer("Internal product ID")),

		singer.Prop("ean", singer.String("European Article Number")),
		singer.Prop("sku", singer.String("Stock Keeping Unit")),
		singer.Prop("title", singer.String("Product name")),
		singer.Prop("img_url", singer.String("Product image URL")),
		singer.Prop("product_reference", singer.String("Product reference")),

		singer.Prop("stock", singer.Integer("Current stock level")),
		singer.Prop("available_stock", singer.Integer("Available stock after reservations")),
		singer.Prop("total_lvb_stock", singer.Integer("Total LVB stock")),
		singer.Prop("total_fba_stock", singer.Integer("Total FBA stock")),
		singer.Prop("total_fbc_stock", singer.Integer("Total FBC stock")),

		singer.Prop("x_size", singer.Integer("Product dimension X")),
		singer.Prop("y_size", singer.Integer("Product dimension Y")),
		singer.Prop("z_size", singer.Integer("Product dimension Z")),
		singer.Prop("weight", singer.Number("Product weight")),

		singer.Prop("price", singer.Number("Selling price")),
		singer.Prop("purchase_price", singer.Number("Purchase price from supplier")),

		singer.Prop("supplier_id", singer.Integer("Supplier identifier")),
		singer.Prop("minimal_supplier_order_quantity", singer.Integer("MOQ from supplier")),
		singer.Prop("replenishment_time", singer.Integer("Replenishment time in days")),

		singer.Prop("stock_advice_iron_stock", singer.Integer("Recommended safety stock")),
		singer.Prop("units_per_box", singer.Integer("Units per box")),
		singer.Prop("sold_per_day", singer.Number("Average daily sales")),

		singer.Prop("is_bundle_product", singer.Integer("Indicates if product is a bundle (0/1)")),
		singer.Prop("require_serial_number", singer.Integer("Requires serial number (0/1)")),

		singer.Prop("stocking_date", singer.DateTime("Last stocking date (UTC)")),
		singer.Prop("updated_at", singer.DateTime("Last update timestamp")),

		singer.Prop("tags", singer.String("Product tags (JSON array)")),
		singer.Prop("child_products", singer.String("Child products for bundles (JSON array)")),
	)
}
