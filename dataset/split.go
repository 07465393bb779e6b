// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package dataset

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

// Split partitions d into a train and a test set. The test set gets
// ceil(testSize*n) rows and the train set the remainder. Rows are assigned
// through a permutation drawn from a source seeded with seed, so the same
// input and seed always yield the same partitions, in the same order.
//
// testSize must lie strictly between 0 and 1, and both partitions must end up
// non-empty.
func Split(d *Dataset, testSize float64, seed int64) (train, test *Dataset, err error) {
	if !(testSize > 0 && testSize < 1) {
		return nil, nil, errors.Errorf("test size must be between 0 and 1 exclusive, got %v", testSize)
	}

	n := d.Len()
	nTest := int(math.Ceil(testSize * float64(n)))
	nTrain := n - nTest
	if nTest == 0 || nTrain == 0 {
		return nil, nil, errors.Errorf("with %d rows and test size %v, the train or test set would be empty", n, testSize)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	return d.Subset(perm[nTest:]), d.Subset(perm[:nTest]), nil
}
