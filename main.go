// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/kvernet/goupil/cmd"

func main() {
	cmd.Execute()
}
