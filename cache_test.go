// Copyright 2025 Naren Yellavula
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

package main

import (
	"testing"
	"time"
)

func TestCacheRecordCardAndGetRecordCard(t *testing.T) {
	c := NewRecordCardCache(0)
	card := "# Alice"

	// Initially, GetRecordCard should return an empty string for a missing record.
	if got := GetRecordCard(c, 10); got != "" {
		t.Errorf("GetRecordCard(10) = %q; want empty string", got)
	}

	CacheRecordCard(c, 10, card)

	if got := GetRecordCard(c, 10); got != card {
		t.Errorf("GetRecordCard(10) = %q; want %q", got, card)
	}

	InvalidateRecordCard(c, 10)
	if got := GetRecordCard(c, 10); got != "" {
		t.Errorf("after invalidation GetRecordCard(10) = %q; want empty string", got)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := NewRecordCardCache(100 * time.Millisecond)
	CacheRecordCard(c, 7, "This card should expire soon.")

	if got := GetRecordCard(c, 7); got == "" {
		t.Error("card missing right after caching")
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if got := GetRecordCard(c, 7); got != "" {
		t.Errorf("After expiration, GetRecordCard(7) = %q; want empty string", got)
	}
}
