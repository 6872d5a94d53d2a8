// Package nodeset provides an ordered, index-addressable container of
// opaque node handles. A Set is not safe for concurrent use; the strategies
// that own one guard it with their own lock.
package nodeset
