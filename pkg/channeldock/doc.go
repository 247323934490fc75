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

// Package channeldock is a client for the Channeldock seller REST API.
//
// # Authentication
//
// Every request carries the account credentials as the api_key and
// api_secret headers.
//
// # Pagination
//
// List endpoints are paged with a 1-based page query parameter and return
// an object holding the records array and an <entity>_count total:
//
//	{"response": "success", "products_count": 120, "products": [...]}
//
// A page shorter than the page size, or a zero count, ends the listing.
//
// # Rate limits and retries
//
// The API allows 1000 requests per hour. Requests are spaced by a token
// bucket, and the client slows down further when X-RateLimit-Remaining runs
// low. 429 responses are retried after X-RateLimit-Reset; 5xx responses are
// retried on a 30s/60s/120s/240s schedule. Other 4xx responses fail at once.
//
// # Usage
//
//	client := channeldock.New(apiKey, apiSecret)
//	page, err := client.GetPage(ctx, "/portal/api/v2/seller/suppliers",
//	    url.Values{"page": {"1"}}, "suppliers")
package channeldock
