// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/ordtree/ordtree/fault"
)

// text payload ordered lexically
type textItem string

func (s textItem) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(textItem)))
}

func (s textItem) String() string {
	return string(s)
}

// numeric payload
type numberItem int64

func (n numberItem) Compare(x interface{}) int {
	m := x.(numberItem)
	switch {
	case n < m:
		return -1
	case n > m:
		return +1
	default:
		return 0
	}
}

func (n numberItem) String() string {
	return strconv.FormatInt(int64(n), 10)
}

// convert command arguments to payloads of a uniform kind
func toItems(values []string, numeric bool) ([]interface{}, error) {
	items := make([]interface{}, 0, len(values))
	for _, v := range values {
		if numeric {
			n, err := strconv.ParseInt(v, 10, 64)
			if nil != err {
				return nil, fault.ErrInvalidValue
			}
			items = append(items, numberItem(n))
		} else {
			items = append(items, textItem(v))
		}
	}
	return items, nil
}
