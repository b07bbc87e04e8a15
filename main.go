// SPDX-License-Identifier: MPL-2.0

package main

import cmd "extrasdoc/cmd/extrasdoc"

func main() {
	cmd.Execute()
}
