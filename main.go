// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/biggaero/converter/cmd/converter"

func main() {
	cmd.Execute()
}
