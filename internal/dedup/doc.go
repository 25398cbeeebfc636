// Package dedup picks content items at random while avoiding items that were
// already served from the same used-set.
package dedup
