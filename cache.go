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
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Rendered record cards are cheap to rebuild, so keep them briefly
	defaultCardExpiration = 30 * time.Minute
	cardCacheCleanup      = 5 * time.Minute
)

// NewRecordCardCache creates a cache for rendered patient detail cards.
// A non-positive ttl selects the default.
func NewRecordCardCache(ttl time.Duration) *cache.Cache {
	if ttl <= 0 {
		ttl = defaultCardExpiration
	}
	return cache.New(ttl, cardCacheCleanup)
}

func CacheRecordCard(c *cache.Cache, id int, card string) {
	c.SetDefault(cardKey(id), card)
}

func GetRecordCard(c *cache.Cache, id int) string {
	val, ok := c.Get(cardKey(id))
	if !ok {
		return ""
	}
	return val.(string)
}

// InvalidateRecordCard drops the card for id after the record changed.
func InvalidateRecordCard(c *cache.Cache, id int) {
	c.Delete(cardKey(id))
}

func cardKey(id int) string {
	return strconv.Itoa(id)
}
